package app

import (
	"context"
	"time"
)

const defaultPollInterval = 5 * time.Second

// startPoller launches a background goroutine that requests the protocol
// version at a fixed cadence. Results arrive through the session's loop.
// It returns immediately.
func startPoller(ctx context.Context, s *session, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refresh(s)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func refresh(s *session) {
	if err := s.RefreshVersion(); err != nil {
		s.log.WithError(err).Debug("version poll skipped")
	}
}
