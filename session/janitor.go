package session

import (
	"time"

	"github.com/fina-ai/fina/core"
	"github.com/fina-ai/fina/logging"
)

// Default janitor schedule: sweep once an hour, evicting conversations idle
// for longer than a day.
const (
	DefaultSweepInterval = time.Hour
	DefaultRetention     = 24 * time.Hour
)

// Janitor periodically sweeps a session store, evicting stale conversations.
// It is an explicit task with a stop handle so tests can run sweeps
// deterministically instead of waiting on a real clock.
type Janitor struct {
	store     core.SessionStore
	interval  time.Duration
	retention time.Duration
	logger    logging.Logger
	stop      chan struct{}
	done      chan struct{}
}

// NewJanitor creates a janitor for store. Non-positive interval or retention
// fall back to the defaults.
func NewJanitor(store core.SessionStore, interval, retention time.Duration, logger logging.Logger) *Janitor {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Janitor{
		store:     store,
		interval:  interval,
		retention: retention,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the sweep loop in its own goroutine. Eviction is best
// effort: nothing is surfaced or retried on a run that removes nothing.
func (j *Janitor) Start() {
	go func() {
		defer close(j.done)
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				j.RunOnce(time.Now().UTC())
			case <-j.stop:
				return
			}
		}
	}()
}

// RunOnce performs a single sweep against the given clock reading.
func (j *Janitor) RunOnce(now time.Time) {
	before := j.store.Size()
	j.store.Sweep(j.retention, now)
	if evicted := before - j.store.Size(); evicted > 0 {
		j.logger.Info("evicted stale sessions", "evicted", evicted, "live", j.store.Size())
	}
}

// Stop terminates the sweep loop and waits for it to exit. Safe to call only
// once, after Start.
func (j *Janitor) Stop() {
	close(j.stop)
	<-j.done
}
