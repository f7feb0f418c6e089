package state

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/five82/memscope/internal/memreport"
)

// Stamp identifies one version of a file on disk.
type Stamp struct {
	Size    int64
	ModTime time.Time
}

// StatFile returns the current stamp of path.
func StatFile(path string) (Stamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Stamp{}, fmt.Errorf("stat report: %w", err)
	}
	return Stamp{Size: info.Size(), ModTime: info.ModTime()}, nil
}

// IsZero reports whether the stamp was never set.
func (s Stamp) IsZero() bool {
	return s.Size == 0 && s.ModTime.IsZero()
}

// Equal reports whether both stamps describe the same file version.
func (s Stamp) Equal(o Stamp) bool {
	return s.Size == o.Size && s.ModTime.Equal(o.ModTime)
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Path      string
	Result    memreport.Result
	HasResult bool
	Stamp     Stamp
	LoadedAt  time.Time

	// Loading is set between Begin and the matching Commit.
	Loading     bool
	LoadingPath string
	Generation  uint64
	// LoadedBytes and TotalBytes track the in-flight load. TotalBytes is the file
	// size on disk and may be zero when it is not known yet.
	LoadedBytes int64
	TotalBytes  int64

	LastError           error
	ConsecutiveFailures int
	// FailedPath and FailedStamp identify the file version the last failed load
	// read. The stamp is zero when the file could not be stat'ed.
	FailedPath  string
	FailedStamp Stamp
}

// Store coordinates report loads. Only the most recent Begin may commit.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	cancel   context.CancelFunc
}

// Begin starts a load of path. The previous in-flight load, if any, has its context
// cancelled and can no longer commit.
func (s *Store) Begin(parent context.Context, path string) (uint64, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.snapshot.Generation++
	s.snapshot.Loading = true
	s.snapshot.LoadingPath = path
	s.snapshot.LoadedBytes = 0
	s.snapshot.TotalBytes = 0
	return s.snapshot.Generation, ctx
}

// Progress records how far load gen has read. Updates from superseded loads are
// ignored.
func (s *Store) Progress(gen uint64, read, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.snapshot.Generation || !s.snapshot.Loading {
		return
	}
	s.snapshot.LoadedBytes = read
	s.snapshot.TotalBytes = total
}

// Commit records the outcome of load gen and reports whether it was accepted. A
// stale generation is dropped. When err is non-nil the previous result is kept and
// the error is recorded together with the stamp the failed load saw.
func (s *Store) Commit(gen uint64, result memreport.Result, stamp Stamp, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.snapshot.Loading = false

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		s.snapshot.FailedPath = s.snapshot.LoadingPath
		s.snapshot.FailedStamp = stamp
		return true
	}

	s.snapshot.Path = s.snapshot.LoadingPath
	s.snapshot.Result = result
	s.snapshot.HasResult = true
	s.snapshot.Stamp = stamp
	s.snapshot.LoadedAt = time.Now()
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.FailedPath = ""
	s.snapshot.FailedStamp = Stamp{}
	return true
}

// Current reports whether gen is still the latest load.
func (s *Store) Current(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gen == s.snapshot.Generation
}

// Cancel aborts the in-flight load without committing anything.
func (s *Store) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Snapshot returns a copy of the current snapshot. The Result is shared; it is
// never mutated after it is committed.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
