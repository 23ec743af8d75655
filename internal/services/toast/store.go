// Package toast holds the toast queues for the five screen positions and
// the schedulers that expire auto-dismiss toasts.
//
// A Store is owned by a single event loop. Every mutation (Enqueue, Remove,
// ClearAll) must be dispatched serially by that loop: the Bubble Tea Update
// function in the TUI, or a Loop in headless use. Schedulers never touch the
// queues directly; they ask the loop to call Remove by (position, id) when a
// timer fires.
package toast

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/riordanpawley/toastdemo/internal/types"
)

// Default messages used when a request carries no text
const (
	DefaultSuccessMessage = "Data fetched successfully"
	DefaultErrorMessage   = "Internal server error"
	DefaultOtherMessage   = "Invalid data provided"
)

// DefaultDuration applies when auto-dismiss is requested without a usable duration
const DefaultDuration = time.Second

// Request describes a toast to spawn, as collected by the form
type Request struct {
	Position types.Position
	Message  string
	Severity types.Severity
	// Checked requests auto-dismiss. Duration is ignored without it.
	Checked bool
	// Duration in seconds. Zero, negative or non-finite means "use the default".
	Duration float64
}

// Entry is one visible toast
type Entry struct {
	ID       string
	Position types.Position
	Message  string
	Severity types.Severity
	// Duration is zero when the toast persists until removed
	Duration  time.Duration
	CreatedAt time.Time
}

// AutoDismiss reports whether the entry expires on its own
func (e Entry) AutoDismiss() bool {
	return e.Duration > 0
}

// ExpiresAt returns when the scheduled removal fires, or the zero time
func (e Entry) ExpiresAt() time.Time {
	if !e.AutoDismiss() {
		return time.Time{}
	}
	return e.CreatedAt.Add(e.Duration)
}

// Remaining returns the time left before expiry, never negative
func (e Entry) Remaining(now time.Time) time.Duration {
	if !e.AutoDismiss() {
		return 0
	}
	return max(e.ExpiresAt().Sub(now), 0)
}

// Snapshot is a read-only copy of every queue. All five positions are present.
type Snapshot map[types.Position][]Entry

// Len returns the total number of entries across all positions
func (s Snapshot) Len() int {
	n := 0
	for _, entries := range s {
		n += len(entries)
	}
	return n
}

// Scheduler arranges the delayed removal of a toast
type Scheduler interface {
	ScheduleRemoval(position types.Position, id string, d time.Duration)
}

// Remover is the part of a Store a scheduler calls back into
type Remover interface {
	Remove(position types.Position, id string) bool
}

// IDGenerator produces toast identities
type IDGenerator interface {
	Generate() string
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock replaces time.Now for CreatedAt stamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for lifecycle events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// Store holds the ordered toast queue of every position.
// It is not safe for concurrent use.
type Store struct {
	queues    map[types.Position][]Entry
	scheduler Scheduler
	ids       IDGenerator
	now       func() time.Time
	logger    *slog.Logger

	observers    []observer
	nextObserver int
}

type observer struct {
	id int
	fn func(Snapshot)
}

// NewStore creates an empty store. A nil scheduler disables auto-dismiss
// scheduling; entries still carry their duration.
func NewStore(scheduler Scheduler, opts ...Option) *Store {
	s := &Store{
		queues:    emptyQueues(),
		scheduler: scheduler,
		ids:       UUIDGenerator{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

func emptyQueues() map[types.Position][]Entry {
	queues := make(map[types.Position][]Entry, len(types.Positions()))
	for _, p := range types.Positions() {
		queues[p] = []Entry{}
	}
	return queues
}

// Enqueue creates a toast from the request, appends it to the tail of its
// position's queue and, for auto-dismiss toasts, schedules its removal.
// An unknown position is a programming error and panics.
func (s *Store) Enqueue(req Request) Entry {
	if !req.Position.Valid() {
		panic(fmt.Sprintf("toast: enqueue with %v", req.Position))
	}

	entry := Entry{
		ID:        s.ids.Generate(),
		Position:  req.Position,
		Message:   ResolveMessage(req.Message, req.Severity),
		Severity:  req.Severity,
		Duration:  ResolveDuration(req.Checked, req.Duration),
		CreatedAt: s.now(),
	}

	s.queues[entry.Position] = append(s.queues[entry.Position], entry)
	s.logger.Debug("toast enqueued",
		"id", entry.ID,
		"position", entry.Position.String(),
		"severity", entry.Severity.String(),
		"duration", entry.Duration)

	if entry.AutoDismiss() && s.scheduler != nil {
		s.scheduler.ScheduleRemoval(entry.Position, entry.ID, entry.Duration)
	}

	s.notify()
	return entry
}

// Remove deletes the entry with id from the position's queue. It reports
// whether anything was removed; removing an absent entry is a no-op.
func (s *Store) Remove(position types.Position, id string) bool {
	queue, ok := s.queues[position]
	if !ok {
		return false
	}

	idx := slices.IndexFunc(queue, func(e Entry) bool { return e.ID == id })
	if idx < 0 {
		return false
	}

	s.queues[position] = slices.Delete(queue, idx, idx+1)
	s.logger.Debug("toast removed", "id", id, "position", position.String())
	s.notify()
	return true
}

// ClearAll empties every queue. Pending removals are left armed and
// become no-ops when they fire.
func (s *Store) ClearAll() {
	n := s.Len()
	s.queues = emptyQueues()
	if n == 0 {
		return
	}
	s.logger.Debug("toasts cleared", "count", n)
	s.notify()
}

// Snapshot returns a copy of every queue
func (s *Store) Snapshot() Snapshot {
	snap := make(Snapshot, len(s.queues))
	for p, queue := range s.queues {
		snap[p] = slices.Clone(queue)
	}
	return snap
}

// Entries returns a copy of one position's queue in display order
func (s *Store) Entries(position types.Position) []Entry {
	return slices.Clone(s.queues[position])
}

// Find looks up an entry by id across all positions
func (s *Store) Find(id string) (Entry, bool) {
	for _, queue := range s.queues {
		for _, e := range queue {
			if e.ID == id {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Len returns the total number of active entries
func (s *Store) Len() int {
	n := 0
	for _, queue := range s.queues {
		n += len(queue)
	}
	return n
}

// Subscribe registers fn to receive a snapshot after every change.
// Observers are called in registration order. The returned function
// unregisters fn.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := s.nextObserver
	s.nextObserver++
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		s.observers = slices.DeleteFunc(s.observers, func(o observer) bool { return o.id == id })
	}
}

func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, o := range slices.Clone(s.observers) {
		o.fn(snap)
	}
}

// ResolveMessage returns msg, or the default text for the severity when
// msg is empty
func ResolveMessage(msg string, severity types.Severity) string {
	if msg != "" {
		return msg
	}
	switch severity {
	case types.SeveritySuccess:
		return DefaultSuccessMessage
	case types.SeverityError:
		return DefaultErrorMessage
	default:
		return DefaultOtherMessage
	}
}

// ResolveDuration converts the form's auto-dismiss settings into a toast
// lifetime. Zero means the toast persists.
func ResolveDuration(checked bool, seconds float64) time.Duration {
	if !checked {
		return 0
	}
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return DefaultDuration
	}
	if seconds >= maxSeconds {
		return time.Duration(math.MaxInt64)
	}
	d := time.Duration(seconds * float64(time.Second))
	if d <= 0 {
		return DefaultDuration
	}
	return d
}

// maxSeconds is the longest duration representable as a time.Duration
const maxSeconds = float64(math.MaxInt64 / int64(time.Second))
