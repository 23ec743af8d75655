package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toastdemo/internal/types"
)

// ExpiredMsg is delivered to the Bubble Tea program when a toast's
// auto-dismiss timer elapses. Apply it with Store.Remove.
type ExpiredMsg struct {
	Position types.Position
	ID       string
}

// TickScheduler arms one tea.Tick per auto-dismiss toast. Commands pile up
// until the owning model drains them and returns them from Update.
type TickScheduler struct {
	pending []tea.Cmd
}

// NewTickScheduler creates a scheduler with nothing armed
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// ScheduleRemoval queues a tick that reports ExpiredMsg after d
func (s *TickScheduler) ScheduleRemoval(position types.Position, id string, d time.Duration) {
	s.pending = append(s.pending, expireAfter(position, id, d))
}

// Pending returns the number of ticks waiting to be drained
func (s *TickScheduler) Pending() int {
	return len(s.pending)
}

// Drain returns every queued tick as one command and resets the queue.
// Returns nil when nothing is queued.
func (s *TickScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func expireAfter(position types.Position, id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ExpiredMsg{Position: position, ID: id}
	})
}
