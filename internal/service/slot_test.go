package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/service/ports/mocks"
)

func TestSlotService_Create(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	slot, err := svc.Create(context.Background(), domain.CreateSlotInput{
		OwnerID:   "mentor-1",
		StartTime: base.Add(24 * time.Hour),
		EndTime:   base.Add(25 * time.Hour),
		Capacity:  3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, "mentor-1", slot.OwnerID)
	assert.Equal(t, 3, slot.Capacity)
	assert.Equal(t, 0, slot.BookedCount)
	assert.Equal(t, domain.SlotStatusOpen, slot.Status())
}

func TestSlotService_Create_DefaultCapacity(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	slot, err := svc.Create(context.Background(), domain.CreateSlotInput{
		OwnerID:   "mentor-1",
		StartTime: base.Add(time.Hour),
		EndTime:   base.Add(2 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, slot.Capacity)
}

func TestSlotService_Create_Validation(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input domain.CreateSlotInput
	}{
		{
			name: "missing owner",
			input: domain.CreateSlotInput{
				StartTime: base.Add(time.Hour),
				EndTime:   base.Add(2 * time.Hour),
			},
		},
		{
			name:  "missing times",
			input: domain.CreateSlotInput{OwnerID: "mentor-1"},
		},
		{
			name: "end before start",
			input: domain.CreateSlotInput{
				OwnerID:   "mentor-1",
				StartTime: base.Add(2 * time.Hour),
				EndTime:   base.Add(time.Hour),
			},
		},
		{
			name: "start in the past",
			input: domain.CreateSlotInput{
				OwnerID:   "mentor-1",
				StartTime: base.Add(-time.Hour),
				EndTime:   base.Add(time.Hour),
			},
		},
		{
			name: "negative capacity",
			input: domain.CreateSlotInput{
				OwnerID:   "mentor-1",
				StartTime: base.Add(time.Hour),
				EndTime:   base.Add(2 * time.Hour),
				Capacity:  -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockSlotRepo(t)
			svc := NewSlotService(repo)
			svc.now = func() time.Time { return base }

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSlotService_ListAvailable_GroupsByDate(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	day1a := &domain.Slot{ID: "s1", StartTime: base.Add(2 * time.Hour), Capacity: 1}
	day1b := &domain.Slot{ID: "s2", StartTime: base.Add(4 * time.Hour), Capacity: 1}
	day2 := &domain.Slot{ID: "s3", StartTime: base.Add(26 * time.Hour), Capacity: 1}

	repo.EXPECT().ListOpenBetween(mock.Anything, base, time.Time{}).
		Return([]*domain.Slot{day1a, day1b, day2}, nil)

	avail, err := svc.ListAvailable(context.Background(), base, time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 3, avail.TotalSlots)
	require.Len(t, avail.Days, 2)
	assert.Equal(t, "2026-03-10", avail.Days[0].Date)
	assert.Len(t, avail.Days[0].Slots, 2)
	assert.Equal(t, "2026-03-11", avail.Days[1].Date)
	assert.Len(t, avail.Days[1].Slots, 1)
}

func TestSlotService_ListAvailable_ClampsFromToNow(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	// Asking for a window that opened in the past still only returns
	// future slots.
	repo.EXPECT().ListOpenBetween(mock.Anything, base, mock.Anything).
		Return([]*domain.Slot{}, nil)

	avail, err := svc.ListAvailable(context.Background(), base.Add(-48*time.Hour), base.Add(48*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, 0, avail.TotalSlots)
	assert.Empty(t, avail.Days)
}

func TestSlotService_ListAvailable_InvalidWindow(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := svc.ListAvailable(context.Background(), base.Add(time.Hour), base)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSlotService_Delete(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	repo.EXPECT().Delete(mock.Anything, "s1", "mentor-1").Return(nil)

	err := svc.Delete(context.Background(), "s1", "mentor-1")

	require.NoError(t, err)
}

func TestSlotService_Delete_HasBookings(t *testing.T) {
	repo := mocks.NewMockSlotRepo(t)
	svc := NewSlotService(repo)

	repo.EXPECT().Delete(mock.Anything, "s1", "mentor-1").Return(domain.ErrSlotHasBookings)

	err := svc.Delete(context.Background(), "s1", "mentor-1")

	assert.ErrorIs(t, err, domain.ErrSlotHasBookings)
}
