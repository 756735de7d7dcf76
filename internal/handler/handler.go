package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/handler/dto"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/middleware"
)

type SlotSvc interface {
	Create(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error)
	ListAvailable(ctx context.Context, from, to time.Time) (*domain.Availability, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Slot, error)
	Delete(ctx context.Context, slotID, ownerID string) error
}

type InterviewSvc interface {
	Schedule(ctx context.Context, applicationID, slotID string) (*domain.Interview, error)
	Cancel(ctx context.Context, id string) (*domain.Interview, error)
	Review(ctx context.Context, id string, outcome domain.Outcome, notes string) (*domain.Interview, error)
	GetByID(ctx context.Context, id string) (*domain.Interview, error)
	GetByApplication(ctx context.Context, applicationID string) (*domain.Interview, error)
	List(ctx context.Context) ([]*domain.Interview, error)
}

type Handler struct {
	slotService      SlotSvc
	interviewService InterviewSvc
}

func NewHandler(slotService SlotSvc, interviewService InterviewSvc) *Handler {
	return &Handler{
		slotService:      slotService,
		interviewService: interviewService,
	}
}

// Slots

func (h *Handler) CreateSlot(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("authentication required"))
		return
	}

	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid start_time format, expected RFC3339"))
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid end_time format, expected RFC3339"))
		return
	}

	input := domain.CreateSlotInput{
		OwnerID:   principal.UserID,
		StartTime: startTime,
		EndTime:   endTime,
		Capacity:  req.Capacity,
	}

	slot, err := h.slotService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToSlotResponse(slot)))
}

func (h *Handler) ListAvailableSlots(c *ginext.Context) {
	from, err := parseTimeParam(c.Query("from"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid from date"))
		return
	}
	to, err := parseTimeParam(c.Query("to"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid to date"))
		return
	}

	avail, err := h.slotService.ListAvailable(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAvailabilityResponse(avail)))
}

func (h *Handler) ListMySlots(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("authentication required"))
		return
	}

	slots, err := h.slotService.ListByOwner(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToSlotResponses(slots)))
}

func (h *Handler) DeleteSlot(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("authentication required"))
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid slot id"))
		return
	}

	if err := h.slotService.Delete(c.Request.Context(), id, principal.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(ginext.H{"deleted": true}))
}

// Interviews

func (h *Handler) ScheduleInterview(c *ginext.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Application ID and Slot ID are required"))
		return
	}
	if req.ApplicationID == "" || req.SlotID == "" {
		c.JSON(http.StatusBadRequest, dto.Error("Application ID and Slot ID are required"))
		return
	}
	if _, err := uuid.Parse(req.ApplicationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid application id"))
		return
	}
	if _, err := uuid.Parse(req.SlotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid slot id"))
		return
	}

	iv, err := h.interviewService.Schedule(c.Request.Context(), req.ApplicationID, req.SlotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToInterviewResponse(iv)))
}

func (h *Handler) GetInterviewByApplication(c *ginext.Context) {
	applicationID := c.Param("applicationId")
	if _, err := uuid.Parse(applicationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid application id"))
		return
	}

	iv, err := h.interviewService.GetByApplication(c.Request.Context(), applicationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToInterviewResponse(iv)))
}

func (h *Handler) ListInterviews(c *ginext.Context) {
	interviews, err := h.interviewService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToInterviewResponses(interviews)))
}

func (h *Handler) GetInterview(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid interview id"))
		return
	}

	iv, err := h.interviewService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToInterviewResponse(iv)))
}

func (h *Handler) ReviewInterview(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid interview id"))
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	iv, err := h.interviewService.Review(c.Request.Context(), id, domain.Outcome(req.Outcome), req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToInterviewResponse(iv)))
}

func (h *Handler) CancelInterview(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("invalid interview id"))
		return
	}

	iv, err := h.interviewService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToInterviewResponse(iv)))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrInterviewNotFound):
		c.JSON(http.StatusNotFound, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrAlreadyScheduled),
		errors.Is(err, domain.ErrInterviewNotScheduled),
		errors.Is(err, domain.ErrSlotHasBookings):
		c.JSON(http.StatusConflict, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrNotSlotOwner):
		c.JSON(http.StatusForbidden, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))

	case errors.Is(err, domain.ErrStoreTimeout):
		c.JSON(http.StatusServiceUnavailable, dto.Error("service temporarily unavailable"))

	default:
		c.JSON(http.StatusInternalServerError, dto.Error("internal server error"))
	}
}

// parseTimeParam accepts RFC3339 or a bare date. A bare "to" date is
// inclusive, so it extends to the end of that day.
func parseTimeParam(value string, endOfDay bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24 * time.Hour)
	}
	return t, nil
}
