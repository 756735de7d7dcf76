package domain

import "time"

type SlotStatus string

const (
	SlotStatusOpen SlotStatus = "open"
	SlotStatusFull SlotStatus = "full"
)

// Slot is a bookable interview time window created by an interviewer.
// booked_count is mutated only through atomic conditional updates in the
// repository, never read-then-written.
type Slot struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Capacity    int       `json:"capacity"`
	BookedCount int       `json:"booked_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Slot) Status() SlotStatus {
	if s.BookedCount >= s.Capacity {
		return SlotStatusFull
	}
	return SlotStatusOpen
}

type CreateSlotInput struct {
	OwnerID   string
	StartTime time.Time
	EndTime   time.Time
	Capacity  int
}

// DayAvailability groups the open slots of one UTC calendar date,
// ordered by start time ascending.
type DayAvailability struct {
	Date  string  `json:"date"`
	Slots []*Slot `json:"slots"`
}

// Availability is the public free-slot view. Days are ordered by date
// ascending and never contain full or past slots.
type Availability struct {
	TotalSlots int               `json:"total_slots"`
	Days       []DayAvailability `json:"days"`
}
