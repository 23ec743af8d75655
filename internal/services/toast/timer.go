package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/riordanpawley/toastdemo/internal/types"
)

// TimerScheduler arms a time.AfterFunc per toast. When a timer fires the
// removal is posted to the loop, so the store is only touched serially.
// Armed timers are never cancelled by early removal; Stop ends them all
// when the session is over.
type TimerScheduler struct {
	loop   *Loop
	logger *slog.Logger

	mu      sync.Mutex
	target  Remover
	timers  map[string]*time.Timer
	stopped bool
}

// NewTimerScheduler creates a scheduler that dispatches removals onto loop
func NewTimerScheduler(loop *Loop, logger *slog.Logger) *TimerScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimerScheduler{
		loop:   loop,
		logger: logger,
		timers: make(map[string]*time.Timer),
	}
}

// SetTarget sets the store that receives removals
func (s *TimerScheduler) SetTarget(r Remover) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = r
}

// ScheduleRemoval arms a one-shot timer that removes (position, id) after d
func (s *TimerScheduler) ScheduleRemoval(position types.Position, id string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.timers[id] = time.AfterFunc(d, func() { s.fire(position, id) })
}

func (s *TimerScheduler) fire(position types.Position, id string) {
	s.mu.Lock()
	delete(s.timers, id)
	target := s.target
	stopped := s.stopped
	s.mu.Unlock()

	if stopped || target == nil {
		return
	}

	posted := s.loop.Post(func() {
		if !target.Remove(position, id) {
			s.logger.Debug("expired toast already gone", "id", id, "position", position.String())
		}
	})
	if !posted {
		s.logger.Debug("loop closed before toast expired", "id", id)
	}
}

// Pending returns the number of armed timers that have not fired
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop disarms every outstanding timer. Later schedules are ignored.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
