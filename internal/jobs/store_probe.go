package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Pinger is satisfied by repository.Repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StartStoreProbe pings the store immediately and then on every interval,
// reporting each result to report. It returns once the first probe is done;
// later probes run until ctx is cancelled.
func StartStoreProbe(ctx context.Context, store Pinger, interval time.Duration, report func(healthy bool), log zerolog.Logger) {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	log = log.With().Str("component", "store_probe").Logger()

	healthy := probeOnce(ctx, store, timeout, log)
	report(healthy)

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				next := probeOnce(ctx, store, timeout, log)
				if next != healthy {
					log.Info().Bool("healthy", next).Msg("store health changed")
				}
				healthy = next
				report(healthy)
			}
		}
	}()
}

func probeOnce(ctx context.Context, store Pinger, timeout time.Duration, log zerolog.Logger) bool {
	tickCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := store.Ping(tickCtx); err != nil {
		log.Warn().Err(err).Msg("store ping failed")
		return false
	}
	return true
}
