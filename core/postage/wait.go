package postage

import (
	"context"
	"fmt"
	"time"
)

// batchPollInterval is the interval between batch existence checks.
var batchPollInterval = time.Second

// BatchExistenceChecker is the part of the node client the existence wait
// needs.
type BatchExistenceChecker interface {
	BatchExists(ctx context.Context, batchID string) (bool, error)
}

// WaitUntilBatchExists polls the node until it reports the batch as known.
// Transient errors are treated as the batch not being visible yet. The
// deadline is governed solely by ctx.
func WaitUntilBatchExists(ctx context.Context, c BatchExistenceChecker, batchID string) error {
	for {
		exists, err := c.BatchExists(ctx, batchID)
		if err == nil && exists {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for batch %s: %w", batchID, ctx.Err())
		case <-time.After(batchPollInterval):
		}
	}
}
