package dto

import (
	"time"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

// Response is the envelope every endpoint answers with:
// {"success":true,"data":...} or {"success":false,"message":"..."}.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func Error(message string) Response {
	return Response{Success: false, Message: message}
}

type SlotResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Capacity    int    `json:"capacity"`
	BookedCount int    `json:"booked_count"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type AvailabilityResponse struct {
	TotalSlots  int                       `json:"total_slots"`
	SlotsByDate map[string][]SlotResponse `json:"slots_by_date"`
}

type InterviewResponse struct {
	ID            string `json:"id"`
	ApplicationID string `json:"application_id"`
	SlotID        string `json:"slot_id"`
	InterviewerID string `json:"interviewer_id"`
	Status        string `json:"status"`
	Outcome       string `json:"outcome"`
	ReviewNotes   string `json:"review_notes,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		StartTime:   s.StartTime.Format(time.RFC3339),
		EndTime:     s.EndTime.Format(time.RFC3339),
		Capacity:    s.Capacity,
		BookedCount: s.BookedCount,
		Status:      string(s.Status()),
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponses(slots []*domain.Slot) []SlotResponse {
	res := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		res = append(res, ToSlotResponse(s))
	}
	return res
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	byDate := make(map[string][]SlotResponse, len(a.Days))
	for _, day := range a.Days {
		byDate[day.Date] = ToSlotResponses(day.Slots)
	}

	return AvailabilityResponse{
		TotalSlots:  a.TotalSlots,
		SlotsByDate: byDate,
	}
}

func ToInterviewResponse(iv *domain.Interview) InterviewResponse {
	return InterviewResponse{
		ID:            iv.ID,
		ApplicationID: iv.ApplicationID,
		SlotID:        iv.SlotID,
		InterviewerID: iv.InterviewerID,
		Status:        string(iv.Status),
		Outcome:       string(iv.Outcome),
		ReviewNotes:   iv.ReviewNotes,
		CreatedAt:     iv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     iv.UpdatedAt.Format(time.RFC3339),
	}
}

func ToInterviewResponses(interviews []*domain.Interview) []InterviewResponse {
	res := make([]InterviewResponse, 0, len(interviews))
	for _, iv := range interviews {
		res = append(res, ToInterviewResponse(iv))
	}
	return res
}
