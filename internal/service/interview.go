package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/service/ports"
)

type InterviewService struct {
	interviewRepo ports.InterviewRepo
	slotRepo      ports.SlotRepo
	appRepo       ports.ApplicationRepo
	notifier      ports.InterviewNotifier
	logger        logger.Logger
}

func NewInterviewService(
	interviewRepo ports.InterviewRepo,
	slotRepo ports.SlotRepo,
	appRepo ports.ApplicationRepo,
	notifier ports.InterviewNotifier,
	logger logger.Logger,
) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		slotRepo:      slotRepo,
		appRepo:       appRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

// Schedule books a slot for an application. The capacity check and the
// interview insert happen atomically in the repository; this layer only
// verifies the referenced records exist and fires the notification.
func (s *InterviewService) Schedule(ctx context.Context, applicationID, slotID string) (*domain.Interview, error) {
	if applicationID == "" || slotID == "" {
		return nil, fmt.Errorf("%w: application id and slot id are required", domain.ErrValidation)
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("check application: %w", err)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	if slot.StartTime.Before(time.Now()) {
		return nil, fmt.Errorf("%w: slot is in the past", domain.ErrValidation)
	}

	now := time.Now().UTC()
	iv := &domain.Interview{
		ID:            uuid.New().String(),
		ApplicationID: applicationID,
		SlotID:        slotID,
		InterviewerID: slot.OwnerID,
		Status:        domain.InterviewStatusScheduled,
		Outcome:       domain.OutcomePending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.interviewRepo.Create(ctx, iv); err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	s.logger.Info("interview scheduled",
		logger.String("interview_id", iv.ID),
		logger.String("application_id", applicationID),
		logger.String("slot_id", slotID),
	)

	go s.notifier.InterviewScheduled(context.WithoutCancel(ctx), app, slot, iv)

	return iv, nil
}

// Cancel moves a scheduled interview to cancelled and re-opens its slot
// capacity. Cancelling an already-cancelled interview is a no-op, not an
// error; cancelling a completed one is a conflict.
func (s *InterviewService) Cancel(ctx context.Context, id string) (*domain.Interview, error) {
	iv, changed, err := s.interviewRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel interview: %w", err)
	}

	if !changed {
		s.logger.Debug("interview already cancelled",
			logger.String("interview_id", id),
		)
		return iv, nil
	}

	s.logger.Info("interview cancelled",
		logger.String("interview_id", iv.ID),
		logger.String("application_id", iv.ApplicationID),
		logger.String("slot_id", iv.SlotID),
	)

	// Best effort: the cancellation stands even if the notification
	// context cannot be assembled.
	app, err := s.appRepo.GetByID(ctx, iv.ApplicationID)
	if err != nil {
		s.logger.Error("failed to get application for cancel notification",
			logger.String("application_id", iv.ApplicationID),
			logger.String("error", err.Error()),
		)
		return iv, nil
	}

	slot, err := s.slotRepo.GetByID(ctx, iv.SlotID)
	if err != nil {
		s.logger.Error("failed to get slot for cancel notification",
			logger.String("slot_id", iv.SlotID),
			logger.String("error", err.Error()),
		)
		return iv, nil
	}

	go s.notifier.InterviewCancelled(context.WithoutCancel(ctx), app, slot, iv)

	return iv, nil
}

// Review records the outcome of a scheduled interview, completing it.
func (s *InterviewService) Review(ctx context.Context, id string, outcome domain.Outcome, notes string) (*domain.Interview, error) {
	if outcome != domain.OutcomePass && outcome != domain.OutcomeFail {
		return nil, fmt.Errorf("%w: outcome must be pass or fail", domain.ErrValidation)
	}

	iv, err := s.interviewRepo.Complete(ctx, id, outcome, notes)
	if err != nil {
		return nil, fmt.Errorf("complete interview: %w", err)
	}

	s.logger.Info("interview reviewed",
		logger.String("interview_id", iv.ID),
		logger.String("outcome", string(outcome)),
	)

	return iv, nil
}

func (s *InterviewService) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	return s.interviewRepo.GetByID(ctx, id)
}

func (s *InterviewService) GetByApplication(ctx context.Context, applicationID string) (*domain.Interview, error) {
	return s.interviewRepo.GetByApplication(ctx, applicationID)
}

func (s *InterviewService) List(ctx context.Context) ([]*domain.Interview, error) {
	return s.interviewRepo.List(ctx)
}
