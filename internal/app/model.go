// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toastdemo/internal/config"
	svc "github.com/riordanpawley/toastdemo/internal/services/toast"
	"github.com/riordanpawley/toastdemo/internal/types"
	"github.com/riordanpawley/toastdemo/internal/ui/form"
	"github.com/riordanpawley/toastdemo/internal/ui/overlay"
	"github.com/riordanpawley/toastdemo/internal/ui/statusbar"
	"github.com/riordanpawley/toastdemo/internal/ui/styles"
	"github.com/riordanpawley/toastdemo/internal/ui/toast"
)

// refreshInterval drives the countdown shown on auto-dismiss toasts
const refreshInterval = 200 * time.Millisecond

// Model is the main application state
type Model struct {
	// Toast state. Only Update mutates the store.
	store     *svc.Store
	scheduler *svc.TickScheduler

	// UI state
	form          *form.Form
	overlayStack  *overlay.Stack
	toastRenderer *toast.ToastRenderer
	keys          KeyMap

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
}

// New creates a new application model with the given config
func New(cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	position, err := cfg.Form.DefaultPosition()
	if err != nil {
		logger.Warn("invalid default position, using bottom-right", "error", err)
		position = types.BottomRight
	}

	st := styles.New()
	scheduler := svc.NewTickScheduler()

	return Model{
		store:     svc.NewStore(scheduler, svc.WithLogger(logger)),
		scheduler: scheduler,
		form: form.New(form.Defaults{
			Message:         cfg.Form.Message,
			Position:        position,
			AutoDismiss:     cfg.Form.AutoDismiss,
			DurationSeconds: cfg.Form.DurationSeconds,
		}, st),
		overlayStack:  overlay.NewStack(),
		toastRenderer: toast.New(st, cfg.UI.ToastWidth, cfg.UI.MaxVisible),
		keys:          DefaultKeyMap(),
		styles:        st,
		config:        cfg,
		logger:        logger,
	}
}

// Store exposes the toast store, read-only use outside Update
func (m Model) Store() *svc.Store {
	return m.store
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.form.Init(),
		tickEvery(refreshInterval),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Nothing to change; the next View redraws countdowns
		return m, tickEvery(refreshInterval)

	case svc.ExpiredMsg:
		m.store.Remove(msg.Position, msg.ID)
		return m, nil

	case form.SpawnMsg:
		return m.spawn(msg.Request)

	case form.ClearAllMsg:
		m.store.ClearAll()
		m.logger.Info("cleared all toasts")
		return m, nil

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages
	_, cmd := m.form.Update(msg)
	return m, cmd
}

// spawn enqueues a toast and returns the expiry tick it armed, if any
func (m Model) spawn(req svc.Request) (tea.Model, tea.Cmd) {
	entry := m.store.Enqueue(req)
	m.logger.Info("spawned toast",
		"id", entry.ID,
		"position", entry.Position.String(),
		"severity", entry.Severity.String(),
		"auto_dismiss", entry.AutoDismiss())
	return m, m.scheduler.Drain()
}

// handleKey processes keyboard input when no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Redraw) {
		return m, tea.ClearScreen
	}

	// Text inputs get every key except Esc
	if m.form.Editing() {
		if key.Matches(msg, m.keys.Leave) {
			m.form.Blur()
			return m, nil
		}
		_, cmd := m.form.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.keys.HelpCategories(), m.styles))
	case key.Matches(msg, m.keys.Success):
		return m, m.form.Press(form.FieldSuccess)
	case key.Matches(msg, m.keys.Error):
		return m, m.form.Press(form.FieldError)
	case key.Matches(msg, m.keys.Warn):
		return m, m.form.Press(form.FieldWarn)
	case key.Matches(msg, m.keys.ClearAll):
		return m, m.form.Press(form.FieldClear)
	case key.Matches(msg, m.keys.DismissNewest):
		m.dismiss(true)
		return m, nil
	case key.Matches(msg, m.keys.DismissOldest):
		m.dismiss(false)
		return m, nil
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// dismiss manually removes a toast from the form's selected position
func (m Model) dismiss(newest bool) {
	pos := m.form.Position()
	entries := m.store.Entries(pos)
	if len(entries) == 0 {
		return
	}
	target := entries[0]
	if newest {
		target = entries[len(entries)-1]
	}
	m.store.Remove(pos, target.ID)
	m.logger.Info("dismissed toast", "id", target.ID, "position", pos.String())
}

// mode reports whether the form is taking text input
func (m Model) mode() types.Mode {
	if m.form.Editing() {
		return types.ModeInsert
	}
	return types.ModeNormal
}

// View renders the form, the toast stacks around it and the status bar
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.store.Snapshot()
	counts := make(map[types.Position]int, len(snap))
	for p, entries := range snap {
		counts[p] = len(entries)
	}
	bar := statusbar.New(m.mode(), m.width, m.styles).WithCounts(counts).Render()
	bodyHeight := max(m.height-lipgloss.Height(bar), 1)

	var body string
	if current := m.overlayStack.Current(); current != nil {
		body = m.renderOverlay(current, bodyHeight)
	} else {
		body = m.toastRenderer.Layout(m.form.View(), snap, m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}

// renderOverlay draws the overlay centered in place of the main view
func (m Model) renderOverlay(current overlay.Overlay, height int) string {
	view := current.View()
	if title := current.Title(); title != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), view)
	}
	w, h := current.Size()
	view = m.styles.Overlay.Width(w).Height(h).Render(view)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, view)
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
