package toast

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toastdemo/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickScheduler_DrainEmpty(t *testing.T) {
	s := NewTickScheduler()

	assert.Nil(t, s.Drain())
	assert.Equal(t, 0, s.Pending())
}

func TestTickScheduler_SingleTickReportsExpiry(t *testing.T) {
	s := NewTickScheduler()
	s.ScheduleRemoval(types.TopRight, "abc", time.Millisecond)
	require.Equal(t, 1, s.Pending())

	cmd := s.Drain()
	require.NotNil(t, cmd)
	assert.Equal(t, 0, s.Pending())

	msg := cmd()
	assert.Equal(t, ExpiredMsg{Position: types.TopRight, ID: "abc"}, msg)
}

func TestTickScheduler_MultipleTicksBatch(t *testing.T) {
	s := NewTickScheduler()
	s.ScheduleRemoval(types.TopRight, "a", time.Millisecond)
	s.ScheduleRemoval(types.BottomLeft, "b", time.Millisecond)

	cmd := s.Drain()
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected tea.BatchMsg")
	require.Len(t, batch, 2)

	var got []tea.Msg
	for _, c := range batch {
		got = append(got, c())
	}
	assert.ElementsMatch(t, []tea.Msg{
		ExpiredMsg{Position: types.TopRight, ID: "a"},
		ExpiredMsg{Position: types.BottomLeft, ID: "b"},
	}, got)
}

func TestTickScheduler_WithStore(t *testing.T) {
	sched := NewTickScheduler()
	store := newTestStore(sched, "keep", "expire")

	store.Enqueue(Request{Position: types.TopLeft, Message: "manual"})
	store.Enqueue(Request{Position: types.TopLeft, Checked: true, Duration: 0.001})
	require.Equal(t, 1, sched.Pending())

	msg := sched.Drain()().(ExpiredMsg)
	assert.True(t, store.Remove(msg.Position, msg.ID))

	entries := store.Entries(types.TopLeft)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].ID)
}
