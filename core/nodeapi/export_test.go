package nodeapi

import "time"

func SetUsablePollInterval(d time.Duration) (restore func()) {
	old := usablePollInterval
	usablePollInterval = d
	return func() {
		usablePollInterval = old
	}
}
