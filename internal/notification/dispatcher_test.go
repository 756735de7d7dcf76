package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/service/ports/mocks"
)

type fakeEmailSender struct {
	err  error
	sent []EmailMessage
}

func (f *fakeEmailSender) Send(_ context.Context, msg EmailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeChatSender struct {
	err  error
	sent []string
}

func (f *fakeChatSender) Send(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testFixtures() (*domain.Application, *domain.Slot, *domain.Interview) {
	app := &domain.Application{ID: "a1", CandidateName: "Ada", CandidateEmail: "ada@example.com"}
	slot := &domain.Slot{
		ID:        "s1",
		StartTime: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	}
	iv := &domain.Interview{ID: "i1", ApplicationID: "a1", SlotID: "s1"}
	return app, slot, iv
}

func TestDispatcher_InterviewScheduled_SendsInline(t *testing.T) {
	email := &fakeEmailSender{}
	chat := &fakeChatSender{}
	outbox := mocks.NewMockOutboxRepo(t)

	d := NewDispatcher(email, chat, outbox, newTestLogger(t), 5, time.Minute, 50)

	app, slot, iv := testFixtures()
	d.InterviewScheduled(context.Background(), app, slot, iv)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "ada@example.com", email.sent[0].ToEmail)
	assert.Equal(t, "Your Interview is Scheduled", email.sent[0].Subject)
	assert.Contains(t, email.sent[0].AttachmentICS, "UID:i1@uptick-talent")

	require.Len(t, chat.sent, 1)
	assert.Contains(t, chat.sent[0], "Ada")
}

func TestDispatcher_InterviewScheduled_QueuesOnFailure(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("smtp down")}
	chat := &fakeChatSender{}
	outbox := mocks.NewMockOutboxRepo(t)

	d := NewDispatcher(email, chat, outbox, newTestLogger(t), 5, time.Minute, 50)

	var queued *domain.OutboxMessage
	outbox.EXPECT().Enqueue(mock.Anything, mock.Anything).Run(func(_ context.Context, msg *domain.OutboxMessage) {
		queued = msg
	}).Return(nil)

	app, slot, iv := testFixtures()
	d.InterviewScheduled(context.Background(), app, slot, iv)

	require.NotNil(t, queued)
	assert.Equal(t, domain.OutboxChannelEmail, queued.Channel)
	assert.Equal(t, "ada@example.com", queued.Recipient)
	assert.Equal(t, 1, queued.Attempts)
	assert.Equal(t, domain.OutboxStatusPending, queued.Status)
	assert.Equal(t, "smtp down", queued.LastError)
	assert.False(t, queued.NextAttemptAt.IsZero())

	// chat alert still went through
	require.Len(t, chat.sent, 1)
}

func TestDispatcher_InterviewCancelled_NoAttachment(t *testing.T) {
	email := &fakeEmailSender{}
	chat := &fakeChatSender{}
	outbox := mocks.NewMockOutboxRepo(t)

	d := NewDispatcher(email, chat, outbox, newTestLogger(t), 5, time.Minute, 50)

	app, slot, iv := testFixtures()
	d.InterviewCancelled(context.Background(), app, slot, iv)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "Your Interview Was Cancelled", email.sent[0].Subject)
	assert.Empty(t, email.sent[0].AttachmentICS)
}

func TestDispatcher_DeliverDue_Delivers(t *testing.T) {
	email := &fakeEmailSender{}
	chat := &fakeChatSender{}
	outbox := mocks.NewMockOutboxRepo(t)

	d := NewDispatcher(email, chat, outbox, newTestLogger(t), 5, time.Minute, 50)

	msgs := []*domain.OutboxMessage{
		{ID: "m1", Channel: domain.OutboxChannelEmail, Recipient: "ada@example.com", Subject: "hi", Body: "<p>hi</p>", Attempts: 1},
		{ID: "m2", Channel: domain.OutboxChannelChat, Body: "alert", Attempts: 2},
	}
	outbox.EXPECT().ListDue(mock.Anything, 50).Return(msgs, nil)
	outbox.EXPECT().MarkDelivered(mock.Anything, "m1").Return(nil)
	outbox.EXPECT().MarkDelivered(mock.Anything, "m2").Return(nil)

	delivered, err := d.DeliverDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, delivered)
	assert.Len(t, email.sent, 1)
	assert.Len(t, chat.sent, 1)
}

func TestDispatcher_DeliverDue_BacksOffOnFailure(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("still down")}
	chat := &fakeChatSender{}
	outbox := mocks.NewMockOutboxRepo(t)

	d := NewDispatcher(email, chat, outbox, newTestLogger(t), 5, time.Minute, 50)

	msgs := []*domain.OutboxMessage{
		{ID: "m1", Channel: domain.OutboxChannelEmail, Recipient: "ada@example.com", Attempts: 2},
	}
	outbox.EXPECT().ListDue(mock.Anything, 50).Return(msgs, nil)
	outbox.EXPECT().MarkFailed(mock.Anything, "m1", 3, "still down", mock.Anything, false).Return(nil)

	delivered, err := d.DeliverDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
}

func TestDispatcher_DeliverDue_DeadLettersAtCap(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("still down")}
	chat := &fakeChatSender{}
	outbox := mocks.NewMockOutboxRepo(t)

	d := NewDispatcher(email, chat, outbox, newTestLogger(t), 5, time.Minute, 50)

	msgs := []*domain.OutboxMessage{
		{ID: "m1", Channel: domain.OutboxChannelEmail, Recipient: "ada@example.com", Attempts: 4},
	}
	outbox.EXPECT().ListDue(mock.Anything, 50).Return(msgs, nil)
	outbox.EXPECT().MarkFailed(mock.Anything, "m1", 5, "still down", mock.Anything, true).Return(nil)

	delivered, err := d.DeliverDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
}

func TestDispatcher_DeliverDue_ListFails(t *testing.T) {
	outbox := mocks.NewMockOutboxRepo(t)
	d := NewDispatcher(&fakeEmailSender{}, &fakeChatSender{}, outbox, newTestLogger(t), 5, time.Minute, 50)

	outbox.EXPECT().ListDue(mock.Anything, 50).Return(nil, errors.New("db down"))

	_, err := d.DeliverDue(context.Background())

	require.Error(t, err)
}
