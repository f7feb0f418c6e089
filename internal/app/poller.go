package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/memscope/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartWatcher launches a background goroutine that checks the loaded report's
// size and modification time at a fixed cadence and calls changed when they differ
// from the committed stamp. It returns immediately.
func StartWatcher(ctx context.Context, store *state.Store, interval time.Duration, changed func(path string)) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			failures = check(store, failures, changed)
		}
	}()
}

// check runs one watch step and returns the updated failure count. A version of
// the file that already failed to load is not reloaded again; reloads after
// failures back off like stat errors do.
func check(store *state.Store, failures int, changed func(path string)) int {
	snap := store.Snapshot()
	if !snap.HasResult || snap.Loading {
		return failures
	}
	stamp, err := state.StatFile(snap.Path)
	if err != nil {
		if failures == 0 {
			log.Printf("watch %s: %v", snap.Path, err)
		}
		return failures + 1
	}
	if stamp.Equal(snap.Stamp) {
		return 0
	}
	if snap.LastError != nil && snap.FailedPath == snap.Path &&
		!snap.FailedStamp.IsZero() && stamp.Equal(snap.FailedStamp) {
		return snap.ConsecutiveFailures
	}
	log.Printf("watch %s: changed on disk (size %d -> %d)", snap.Path, snap.Stamp.Size, stamp.Size)
	changed(snap.Path)
	return snap.ConsecutiveFailures
}

// calculateBackoff doubles the interval per consecutive failure up to maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
