package postage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redesblock/mopboard/core/postage"
)

type existenceCheckerFunc func(ctx context.Context, batchID string) (bool, error)

func (f existenceCheckerFunc) BatchExists(ctx context.Context, batchID string) (bool, error) {
	return f(ctx, batchID)
}

func TestWaitUntilBatchExists(t *testing.T) {
	restore := postage.SetBatchPollInterval(time.Millisecond)
	defer restore()

	t.Run("immediately visible", func(t *testing.T) {
		calls := 0
		err := postage.WaitUntilBatchExists(context.Background(), existenceCheckerFunc(func(_ context.Context, _ string) (bool, error) {
			calls++
			return true, nil
		}), "ab")
		if err != nil {
			t.Fatal(err)
		}
		if calls != 1 {
			t.Errorf("got %d calls, want 1", calls)
		}
	})

	t.Run("visible after retries", func(t *testing.T) {
		calls := 0
		err := postage.WaitUntilBatchExists(context.Background(), existenceCheckerFunc(func(_ context.Context, _ string) (bool, error) {
			calls++
			if calls < 3 {
				return false, nil
			}
			return true, nil
		}), "ab")
		if err != nil {
			t.Fatal(err)
		}
		if calls != 3 {
			t.Errorf("got %d calls, want 3", calls)
		}
	})

	t.Run("transient errors are retried", func(t *testing.T) {
		calls := 0
		err := postage.WaitUntilBatchExists(context.Background(), existenceCheckerFunc(func(_ context.Context, _ string) (bool, error) {
			calls++
			if calls == 1 {
				return false, errors.New("connection refused")
			}
			return true, nil
		}), "ab")
		if err != nil {
			t.Fatal(err)
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := postage.WaitUntilBatchExists(ctx, existenceCheckerFunc(func(_ context.Context, _ string) (bool, error) {
			return false, nil
		}), "ab")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("got %v, want deadline exceeded", err)
		}
	})
}
