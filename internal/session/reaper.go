package session

import (
	"context"
	"log/slog"
	"time"
)

// Reaper periodically evicts sessions idle beyond a threshold, so
// abandoned dialogs do not accumulate in memory.
type Reaper struct {
	store       *Store
	interval    time.Duration
	idleTimeout time.Duration
	logger      *slog.Logger
}

// NewReaper creates a Reaper sweeping store every interval, evicting
// sessions idle longer than idleTimeout. If logger is nil, the default
// logger is used.
func NewReaper(store *Store, interval, idleTimeout time.Duration, logger *slog.Logger) *Reaper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reaper{
		store:       store,
		interval:    interval,
		idleTimeout: idleTimeout,
		logger:      logger.With(slog.String("component", "session_reaper")),
	}
}

// Run sweeps until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.Sweep(now)
		}
	}
}

// Sweep evicts sessions idle longer than the threshold as of now and
// returns how many were removed.
func (r *Reaper) Sweep(now time.Time) int {
	evicted := r.store.EvictIdle(now.Add(-r.idleTimeout))
	if len(evicted) > 0 {
		r.logger.Info("evicted idle sessions",
			slog.Int("count", len(evicted)),
			slog.Int("remaining", r.store.Len()))
	}
	return len(evicted)
}
