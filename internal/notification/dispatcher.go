package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/service/ports"
)

const bookingTimeFormat = "Mon, 02 Jan 2006 15:04 MST"

// Dispatcher is the notifier behind booking operations. It sends inline
// first; a failed send is logged and queued to the outbox, never surfaced
// to the booking caller. DeliverDue drains the outbox with capped,
// backed-off retries and dead-letters what keeps failing.
type Dispatcher struct {
	email       EmailSender
	chat        ChatSender
	outbox      ports.OutboxRepo
	logger      logger.Logger
	maxAttempts int
	retryDelay  time.Duration
	batchSize   int
}

func NewDispatcher(
	email EmailSender,
	chat ChatSender,
	outbox ports.OutboxRepo,
	log logger.Logger,
	maxAttempts int,
	retryDelay time.Duration,
	batchSize int,
) *Dispatcher {
	return &Dispatcher{
		email:       email,
		chat:        chat,
		outbox:      outbox,
		logger:      log,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		batchSize:   batchSize,
	}
}

func (d *Dispatcher) InterviewScheduled(ctx context.Context, app *domain.Application, slot *domain.Slot, iv *domain.Interview) {
	when := slot.StartTime.UTC().Format(bookingTimeFormat)

	d.sendEmail(ctx, EmailMessage{
		ToEmail:  app.CandidateEmail,
		ToName:   app.CandidateName,
		Subject:  "Your Interview is Scheduled",
		HTMLBody: fmt.Sprintf("<h1>Interview Scheduled</h1><p>Hi %s,</p><p>Your interview is scheduled for %s. A calendar invite is attached.</p>", app.CandidateName, when),

		AttachmentICS: BuildInterviewICS(iv, slot, app),
	})

	d.sendChat(ctx, fmt.Sprintf(
		"*New interview booked*\nCandidate: %s\nTime: %s",
		app.CandidateName, when,
	))
}

func (d *Dispatcher) InterviewCancelled(ctx context.Context, app *domain.Application, slot *domain.Slot, iv *domain.Interview) {
	when := slot.StartTime.UTC().Format(bookingTimeFormat)

	d.sendEmail(ctx, EmailMessage{
		ToEmail:  app.CandidateEmail,
		ToName:   app.CandidateName,
		Subject:  "Your Interview Was Cancelled",
		HTMLBody: fmt.Sprintf("<h1>Interview Cancelled</h1><p>Hi %s,</p><p>Your interview scheduled for %s has been cancelled. Please pick a new slot.</p>", app.CandidateName, when),
	})

	d.sendChat(ctx, fmt.Sprintf(
		"*Interview cancelled*\nCandidate: %s\nTime: %s",
		app.CandidateName, when,
	))
}

func (d *Dispatcher) sendEmail(ctx context.Context, msg EmailMessage) {
	err := d.email.Send(ctx, msg)
	if err == nil {
		return
	}

	d.logger.Error("failed to send email, queueing for retry",
		logger.String("recipient", msg.ToEmail),
		logger.String("subject", msg.Subject),
		logger.String("error", err.Error()),
	)
	d.enqueue(ctx, &domain.OutboxMessage{
		Channel:       domain.OutboxChannelEmail,
		Recipient:     msg.ToEmail,
		Subject:       msg.Subject,
		Body:          msg.HTMLBody,
		AttachmentICS: msg.AttachmentICS,
	}, err)
}

func (d *Dispatcher) sendChat(ctx context.Context, text string) {
	err := d.chat.Send(ctx, text)
	if err == nil {
		return
	}

	d.logger.Error("failed to send chat alert, queueing for retry",
		logger.String("error", err.Error()),
	)
	d.enqueue(ctx, &domain.OutboxMessage{
		Channel: domain.OutboxChannelChat,
		Body:    text,
	}, err)
}

func (d *Dispatcher) enqueue(ctx context.Context, msg *domain.OutboxMessage, sendErr error) {
	now := time.Now().UTC()
	msg.ID = uuid.New().String()
	msg.Attempts = 1
	msg.Status = domain.OutboxStatusPending
	msg.LastError = sendErr.Error()
	msg.NextAttemptAt = now.Add(d.retryDelay)
	msg.CreatedAt = now
	msg.UpdatedAt = now

	if err := d.outbox.Enqueue(ctx, msg); err != nil {
		// Notification is lost; the booking itself is unaffected.
		d.logger.Error("failed to enqueue notification",
			logger.String("channel", string(msg.Channel)),
			logger.String("error", err.Error()),
		)
	}
}

// DeliverDue is called by the outbox worker. It returns the number of
// messages delivered on this pass.
func (d *Dispatcher) DeliverDue(ctx context.Context) (int, error) {
	msgs, err := d.outbox.ListDue(ctx, d.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list due notifications: %w", err)
	}

	delivered := 0
	for _, msg := range msgs {
		sendErr := d.redeliver(ctx, msg)
		if sendErr == nil {
			if err := d.outbox.MarkDelivered(ctx, msg.ID); err != nil {
				return delivered, fmt.Errorf("mark delivered: %w", err)
			}
			delivered++
			continue
		}

		attempts := msg.Attempts + 1
		dead := attempts >= d.maxAttempts
		// Exponential backoff on the retry delay.
		next := time.Now().UTC().Add(d.retryDelay << msg.Attempts)
		if err := d.outbox.MarkFailed(ctx, msg.ID, attempts, sendErr.Error(), next, dead); err != nil {
			return delivered, fmt.Errorf("mark failed: %w", err)
		}

		if dead {
			d.logger.Error("notification dead-lettered",
				logger.String("outbox_id", msg.ID),
				logger.String("channel", string(msg.Channel)),
				logger.Int("attempts", attempts),
				logger.String("error", sendErr.Error()),
			)
		}
	}

	return delivered, nil
}

func (d *Dispatcher) redeliver(ctx context.Context, msg *domain.OutboxMessage) error {
	switch msg.Channel {
	case domain.OutboxChannelEmail:
		return d.email.Send(ctx, EmailMessage{
			ToEmail:       msg.Recipient,
			Subject:       msg.Subject,
			HTMLBody:      msg.Body,
			AttachmentICS: msg.AttachmentICS,
		})
	case domain.OutboxChannelChat:
		return d.chat.Send(ctx, msg.Body)
	default:
		return fmt.Errorf("unknown notification channel: %s", msg.Channel)
	}
}
