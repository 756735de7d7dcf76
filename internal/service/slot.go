package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/service/ports"
)

const defaultSlotCapacity = 1

// dateLayout keys the availability groups by UTC calendar date.
const dateLayout = "2006-01-02"

type SlotService struct {
	repo ports.SlotRepo
	now  func() time.Time
}

func NewSlotService(repo ports.SlotRepo) *SlotService {
	return &SlotService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *SlotService) Create(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error) {
	if input.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", domain.ErrValidation)
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time and end_time are required", domain.ErrValidation)
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	if input.StartTime.Before(s.now()) {
		return nil, fmt.Errorf("%w: start_time must be in the future", domain.ErrValidation)
	}

	capacity := input.Capacity
	if capacity == 0 {
		capacity = defaultSlotCapacity
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", domain.ErrValidation)
	}

	now := s.now().UTC()
	slot := &domain.Slot{
		ID:          uuid.New().String(),
		OwnerID:     input.OwnerID,
		StartTime:   input.StartTime.UTC(),
		EndTime:     input.EndTime.UTC(),
		Capacity:    capacity,
		BookedCount: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	return slot, nil
}

// ListAvailable computes the public free-slot view: open slots starting in
// the future, grouped by calendar date. Always recomputed from the store,
// never cached in process.
func (s *SlotService) ListAvailable(ctx context.Context, from, to time.Time) (*domain.Availability, error) {
	if !to.IsZero() && !to.After(from) {
		return nil, fmt.Errorf("%w: to must be after from", domain.ErrValidation)
	}

	if now := s.now().UTC(); from.Before(now) {
		from = now
	}

	slots, err := s.repo.ListOpenBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list open slots: %w", err)
	}

	avail := &domain.Availability{
		TotalSlots: len(slots),
		Days:       []domain.DayAvailability{},
	}
	for _, slot := range slots {
		date := slot.StartTime.UTC().Format(dateLayout)
		if n := len(avail.Days); n > 0 && avail.Days[n-1].Date == date {
			avail.Days[n-1].Slots = append(avail.Days[n-1].Slots, slot)
			continue
		}
		avail.Days = append(avail.Days, domain.DayAvailability{
			Date:  date,
			Slots: []*domain.Slot{slot},
		})
	}

	return avail, nil
}

func (s *SlotService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Slot, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *SlotService) Delete(ctx context.Context, slotID, ownerID string) error {
	return s.repo.Delete(ctx, slotID, ownerID)
}
