package repository

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/retry"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

// Every persistence call carries a bounded timeout so a stuck database
// surfaces as 503 instead of a hung request.
const queryTimeout = 3 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// storeErr maps a deadline expiry onto the domain timeout sentinel before
// the error is wrapped further up.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrStoreTimeout
	}
	return err
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}
