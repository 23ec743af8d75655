package toast

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/riordanpawley/toastdemo/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scheduled is one removal captured by recordingScheduler
type scheduled struct {
	position types.Position
	id       string
	d        time.Duration
}

// recordingScheduler captures removals so tests can fire them by hand
type recordingScheduler struct {
	calls []scheduled
}

func (r *recordingScheduler) ScheduleRemoval(position types.Position, id string, d time.Duration) {
	r.calls = append(r.calls, scheduled{position: position, id: id, d: d})
}

// fireAll simulates every armed timer elapsing
func (r *recordingScheduler) fireAll(target Remover) {
	for _, c := range r.calls {
		target.Remove(c.position, c.id)
	}
	r.calls = nil
}

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestStore(sched Scheduler, ids ...string) *Store {
	opts := []Option{WithClock(func() time.Time { return fixedNow })}
	if len(ids) > 0 {
		opts = append(opts, WithIDGenerator(NewFixedGenerator(ids...)))
	}
	return NewStore(sched, opts...)
}

func TestNewStore_AllPositionsPresent(t *testing.T) {
	store := newTestStore(nil)

	snap := store.Snapshot()
	require.Len(t, snap, 5)
	for _, p := range types.Positions() {
		entries, ok := snap[p]
		assert.True(t, ok, "missing position %s", p)
		assert.Empty(t, entries)
	}
	assert.Equal(t, 0, store.Len())
}

func TestEnqueue_UniqueIDs(t *testing.T) {
	store := NewStore(nil)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		pos := types.Positions()[i%5]
		e := store.Enqueue(Request{Position: pos, Severity: types.SeveritySuccess})
		require.NotEmpty(t, e.ID)
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Equal(t, 200, store.Len())
}

func TestEnqueue_NotCheckedPersists(t *testing.T) {
	sched := &recordingScheduler{}
	store := newTestStore(sched, "a")

	e := store.Enqueue(Request{
		Position: types.BottomRight,
		Severity: types.SeverityError,
		Checked:  false,
		Duration: 5,
	})

	assert.Equal(t, time.Duration(0), e.Duration)
	assert.False(t, e.AutoDismiss())
	assert.True(t, e.ExpiresAt().IsZero())
	assert.Empty(t, sched.calls, "persistent toast must not be scheduled")
}

func TestEnqueue_CheckedWithoutDurationDefaultsToOneSecond(t *testing.T) {
	sched := &recordingScheduler{}
	store := newTestStore(sched, "a")

	e := store.Enqueue(Request{Position: types.TopLeft, Severity: types.SeveritySuccess, Checked: true})

	assert.Equal(t, time.Second, e.Duration)
	require.Len(t, sched.calls, 1)
	assert.Equal(t, scheduled{position: types.TopLeft, id: "a", d: time.Second}, sched.calls[0])
}

func TestEnqueue_DefaultMessages(t *testing.T) {
	tests := []struct {
		name     string
		severity types.Severity
		want     string
	}{
		{"success", types.SeveritySuccess, "Data fetched successfully"},
		{"error", types.SeverityError, "Internal server error"},
		{"warn", types.SeverityWarn, "Invalid data provided"},
		{"unknown", types.Severity(42), "Invalid data provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(nil)
			e := store.Enqueue(Request{Position: types.TopCenter, Severity: tt.severity})
			assert.Equal(t, tt.want, e.Message)
		})
	}
}

func TestEnqueue_MessageVerbatim(t *testing.T) {
	store := newTestStore(nil)

	e := store.Enqueue(Request{Position: types.TopCenter, Severity: types.SeverityError, Message: "  disk full  "})

	assert.Equal(t, "  disk full  ", e.Message)
}

func TestEnqueue_AppendsAtTail(t *testing.T) {
	store := newTestStore(nil, "1", "2", "3", "4")

	store.Enqueue(Request{Position: types.BottomLeft, Message: "first"})
	store.Enqueue(Request{Position: types.TopRight, Message: "other corner"})
	store.Enqueue(Request{Position: types.BottomLeft, Message: "second"})
	store.Enqueue(Request{Position: types.BottomLeft, Message: "third"})

	entries := store.Entries(types.BottomLeft)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"1", "3", "4"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})
	for _, e := range entries {
		assert.Equal(t, types.BottomLeft, e.Position)
	}
	assert.Len(t, store.Entries(types.TopRight), 1)
}

func TestEnqueue_StampsCreatedAt(t *testing.T) {
	store := newTestStore(nil, "a")

	e := store.Enqueue(Request{Position: types.TopLeft, Checked: true, Duration: 3})

	assert.Equal(t, fixedNow, e.CreatedAt)
	assert.Equal(t, fixedNow.Add(3*time.Second), e.ExpiresAt())
	assert.Equal(t, 2*time.Second, e.Remaining(fixedNow.Add(time.Second)))
	assert.Equal(t, time.Duration(0), e.Remaining(fixedNow.Add(time.Minute)))
}

func TestEnqueue_InvalidPositionPanics(t *testing.T) {
	store := newTestStore(nil)

	assert.Panics(t, func() {
		store.Enqueue(Request{Position: types.Position(99)})
	})
	assert.Equal(t, 0, store.Len())
}

func TestRemove_OnlyTargetEntry(t *testing.T) {
	store := newTestStore(nil, "a", "b", "c")
	store.Enqueue(Request{Position: types.TopLeft})
	store.Enqueue(Request{Position: types.TopLeft})
	store.Enqueue(Request{Position: types.BottomRight})

	assert.True(t, store.Remove(types.TopLeft, "a"))

	left := store.Entries(types.TopLeft)
	require.Len(t, left, 1)
	assert.Equal(t, "b", left[0].ID)
	assert.Len(t, store.Entries(types.BottomRight), 1)
}

func TestRemove_Idempotent(t *testing.T) {
	store := newTestStore(nil, "a", "b")
	store.Enqueue(Request{Position: types.TopLeft})
	store.Enqueue(Request{Position: types.TopLeft})

	assert.True(t, store.Remove(types.TopLeft, "a"))
	once := store.Snapshot()

	assert.False(t, store.Remove(types.TopLeft, "a"))
	assert.Equal(t, once, store.Snapshot())
}

func TestRemove_WrongPositionIsNoop(t *testing.T) {
	store := newTestStore(nil, "a")
	store.Enqueue(Request{Position: types.TopLeft})

	assert.False(t, store.Remove(types.TopRight, "a"))
	assert.False(t, store.Remove(types.Position(-1), "a"))
	assert.Equal(t, 1, store.Len())
}

func TestClearAll(t *testing.T) {
	sched := &recordingScheduler{}
	store := newTestStore(sched, "a", "b", "c", "d")
	store.Enqueue(Request{Position: types.TopLeft, Checked: true, Duration: 10})
	store.Enqueue(Request{Position: types.TopRight})
	store.Enqueue(Request{Position: types.BottomLeft, Checked: true})
	store.Enqueue(Request{Position: types.TopCenter})

	store.ClearAll()

	snap := store.Snapshot()
	require.Len(t, snap, 5)
	assert.Equal(t, 0, snap.Len())
	for _, p := range types.Positions() {
		assert.NotNil(t, snap[p])
	}

	// Timers armed before the clear fire into a no-op
	require.Len(t, sched.calls, 2)
	before := store.Snapshot()
	sched.fireAll(store)
	assert.Equal(t, before, store.Snapshot())
}

func TestClearAll_ThenEnqueueKeepsNewEntries(t *testing.T) {
	sched := &recordingScheduler{}
	store := newTestStore(sched, "old", "new")
	store.Enqueue(Request{Position: types.TopLeft, Checked: true})
	store.ClearAll()
	store.Enqueue(Request{Position: types.TopLeft})

	// Stale timer for "old" must not touch "new"
	sched.fireAll(store)

	entries := store.Entries(types.TopLeft)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].ID)
}

func TestSnapshot_IsACopy(t *testing.T) {
	store := newTestStore(nil, "a")
	store.Enqueue(Request{Position: types.TopLeft, Message: "hello"})

	snap := store.Snapshot()
	snap[types.TopLeft][0].Message = "mutated"
	snap[types.TopLeft] = nil

	entries := store.Entries(types.TopLeft)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Message)
}

func TestFind(t *testing.T) {
	store := newTestStore(nil, "a", "b")
	store.Enqueue(Request{Position: types.TopLeft})
	store.Enqueue(Request{Position: types.BottomRight, Message: "here"})

	e, ok := store.Find("b")
	require.True(t, ok)
	assert.Equal(t, "here", e.Message)

	_, ok = store.Find("missing")
	assert.False(t, ok)
}

func TestSubscribe(t *testing.T) {
	store := newTestStore(nil, "a", "b", "c")

	var got []int
	unsubscribe := store.Subscribe(func(s Snapshot) {
		got = append(got, s.Len())
	})

	store.Enqueue(Request{Position: types.TopLeft})
	store.Enqueue(Request{Position: types.TopLeft})
	store.Remove(types.TopLeft, "a")
	store.Remove(types.TopLeft, "a") // no change, no notification
	store.ClearAll()
	store.ClearAll() // already empty

	assert.Equal(t, []int{1, 2, 1, 0}, got)

	unsubscribe()
	store.Enqueue(Request{Position: types.TopLeft})
	assert.Len(t, got, 4)
}

func TestSubscribe_RegistrationOrder(t *testing.T) {
	store := newTestStore(nil, "a", "b")

	var calls []string
	for _, name := range []string{"first", "second", "third", "fourth", "fifth"} {
		store.Subscribe(func(Snapshot) { calls = append(calls, name) })
	}
	unsubscribe := store.Subscribe(func(Snapshot) { calls = append(calls, "gone") })
	store.Subscribe(func(Snapshot) { calls = append(calls, "last") })
	unsubscribe()

	store.Enqueue(Request{Position: types.TopLeft})
	store.Enqueue(Request{Position: types.TopLeft})

	want := []string{"first", "second", "third", "fourth", "fifth", "last"}
	assert.Equal(t, append(slices.Clone(want), want...), calls)
}

func TestEndToEnd_WarnTopLeft(t *testing.T) {
	sched := &recordingScheduler{}
	store := newTestStore(sched, "E")

	e := store.Enqueue(Request{
		Position: types.TopLeft,
		Severity: types.SeverityWarn,
		Message:  "",
		Checked:  true,
		Duration: 2,
	})

	assert.Equal(t, "Invalid data provided", e.Message)
	assert.Equal(t, 2*time.Second, e.Duration)
	assert.Equal(t, []Entry{e}, store.Entries(types.TopLeft))

	require.Len(t, sched.calls, 1)
	assert.Equal(t, 2*time.Second, sched.calls[0].d)
	sched.fireAll(store)

	assert.Empty(t, store.Entries(types.TopLeft))
}

func TestResolveDuration(t *testing.T) {
	tests := []struct {
		name    string
		checked bool
		seconds float64
		want    time.Duration
	}{
		{"unchecked ignores duration", false, 4, 0},
		{"unchecked zero", false, 0, 0},
		{"checked zero", true, 0, time.Second},
		{"checked negative", true, -3, time.Second},
		{"checked NaN", true, math.NaN(), time.Second},
		{"checked +Inf", true, math.Inf(1), time.Second},
		{"checked whole seconds", true, 5, 5 * time.Second},
		{"checked fractional", true, 0.25, 250 * time.Millisecond},
		{"checked huge", true, 1e300, time.Duration(math.MaxInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDuration(tt.checked, tt.seconds))
		})
	}
}
