// File: internal/services/summary/scheduler.go
package summary

import (
	"sync"
	"time"
)

// Scheduler abstracts the debounce timer so tests can fire it manually.
// Arm replaces any pending fire; at most one fire is ever outstanding.
type Scheduler interface {
	Arm(delay time.Duration, fn func())
	Cancel()
}

type timerScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

// NewTimerScheduler returns the wall-clock scheduler used in production.
func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

func (s *timerScheduler) Arm(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, fn)
}

func (s *timerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
