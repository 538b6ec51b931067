package postage

import "time"

func SetBatchPollInterval(d time.Duration) (restore func()) {
	old := batchPollInterval
	batchPollInterval = d
	return func() {
		batchPollInterval = old
	}
}
