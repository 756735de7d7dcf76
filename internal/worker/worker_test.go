package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/worker/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestWorker_Tick_DeliversDue(t *testing.T) {
	deliverer := mocks.NewMockNotificationDeliverer(t)
	log := newTestLogger(t)

	w := New(deliverer, 50*time.Millisecond, log)

	deliverer.EXPECT().DeliverDue(mock.Anything).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	w.Start(ctx)

	assert.GreaterOrEqual(t, len(deliverer.Calls), 1)
}

func TestWorker_Tick_HandlesError(t *testing.T) {
	deliverer := mocks.NewMockNotificationDeliverer(t)
	log := newTestLogger(t)

	w := New(deliverer, 50*time.Millisecond, log)

	deliverer.EXPECT().DeliverDue(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	w.Start(ctx)

	assert.GreaterOrEqual(t, len(deliverer.Calls), 1)
}

func TestWorker_StopsOnContextCancel(t *testing.T) {
	deliverer := mocks.NewMockNotificationDeliverer(t)
	log := newTestLogger(t)

	w := New(deliverer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}

func TestWorker_MultipleTicks(t *testing.T) {
	deliverer := mocks.NewMockNotificationDeliverer(t)
	log := newTestLogger(t)

	w := New(deliverer, 30*time.Millisecond, log)

	deliverer.EXPECT().DeliverDue(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	w.Start(ctx)

	assert.GreaterOrEqual(t, len(deliverer.Calls), 2)
}
