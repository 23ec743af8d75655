package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toastdemo/internal/config"
	svc "github.com/riordanpawley/toastdemo/internal/services/toast"
	"github.com/riordanpawley/toastdemo/internal/types"
	"github.com/riordanpawley/toastdemo/internal/ui/form"
	"github.com/stretchr/testify/assert"
)

func TestView_Loading(t *testing.T) {
	m := New(config.DefaultConfig(), nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestView_Height(t *testing.T) {
	m := newTestModel(t)

	t.Run("form only", func(t *testing.T) {
		assert.LessOrEqual(t, lipgloss.Height(m.View()), m.height)
	})

	t.Run("with toasts", func(t *testing.T) {
		for _, p := range types.Positions() {
			m = update(t, m, form.SpawnMsg{Request: svc.Request{Position: p, Message: "at " + p.String()}})
		}
		view := m.View()
		assert.LessOrEqual(t, lipgloss.Height(view), m.height)
		for _, p := range types.Positions() {
			assert.Contains(t, view, "at "+p.String())
		}
	})

	t.Run("with overlay", func(t *testing.T) {
		m = update(t, m, runes("?"))
		assert.LessOrEqual(t, lipgloss.Height(m.View()), m.height)
	})
}

func TestView_ShowsFormAndStatus(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, form.SpawnMsg{Request: svc.Request{Position: types.BottomRight, Severity: types.SeverityError}})

	view := m.View()

	assert.Contains(t, view, "Toast Playground")
	assert.Contains(t, view, "Internal server error")
	assert.Contains(t, view, "NORMAL")
	assert.Contains(t, view, "BR:1")
	assert.True(t, strings.Index(view, "Toast Playground") < strings.Index(view, "Internal server error"))
}
