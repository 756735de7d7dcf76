package dto

type CreateSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Capacity  int    `json:"capacity"`
}

// ScheduleRequest carries no binding tags: missing fields must produce the
// documented "Application ID and Slot ID are required" message, not a
// binding error.
type ScheduleRequest struct {
	ApplicationID string `json:"application_id"`
	SlotID        string `json:"slot_id"`
}

type ReviewRequest struct {
	Outcome string `json:"outcome"`
	Notes   string `json:"notes"`
}
