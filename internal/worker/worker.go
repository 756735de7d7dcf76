package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type notificationDeliverer interface {
	DeliverDue(ctx context.Context) (int, error)
}

// Worker drains the notification outbox on a fixed interval. It is the
// only background loop in the service and stops with the app context.
type Worker struct {
	deliverer notificationDeliverer
	interval  time.Duration
	logger    logger.Logger
}

func New(
	deliverer notificationDeliverer,
	interval time.Duration,
	logger logger.Logger,
) *Worker {
	return &Worker{
		deliverer: deliverer,
		interval:  interval,
		logger:    logger,
	}
}

func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started",
		logger.Duration("interval", w.interval),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	delivered, err := w.deliverer.DeliverDue(ctx)
	if err != nil {
		w.logger.Error("failed to deliver queued notifications",
			logger.String("error", err.Error()),
		)
		return
	}

	if delivered > 0 {
		w.logger.Info("queued notifications delivered",
			logger.Int("count", delivered),
		)
	}
}
