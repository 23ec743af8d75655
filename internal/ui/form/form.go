// Package form is the toast builder: message, auto-dismiss, duration,
// position and the buttons that spawn or clear toasts.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	svc "github.com/riordanpawley/toastdemo/internal/services/toast"
	"github.com/riordanpawley/toastdemo/internal/types"
	"github.com/riordanpawley/toastdemo/internal/ui/styles"
)

// SpawnMsg is emitted when one of the toast buttons is pressed
type SpawnMsg struct {
	Request svc.Request
}

// ClearAllMsg is emitted by the Clear All button
type ClearAllMsg struct{}

// Field identifies a focusable form element
type Field int

const (
	FieldMessage Field = iota
	FieldAutoDismiss
	FieldDuration
	FieldPosition
	FieldSuccess
	FieldError
	FieldWarn
	FieldClear
	fieldCount
)

// Defaults are the values the form starts with
type Defaults struct {
	Message         string
	Position        types.Position
	AutoDismiss     bool
	DurationSeconds float64
}

// Form collects toast settings
type Form struct {
	message     textinput.Model
	duration    textinput.Model
	autoDismiss bool
	positionIdx int
	focus       Field
	styles      *styles.Styles
}

// New creates a form seeded with defaults
func New(d Defaults, s *styles.Styles) *Form {
	msg := textinput.New()
	msg.Placeholder = "Data fetched"
	msg.CharLimit = 120
	msg.Width = 30
	msg.SetValue(d.Message)
	msg.Focus()

	dur := textinput.New()
	dur.Placeholder = "5"
	dur.CharLimit = 8
	dur.Width = 8
	if d.DurationSeconds > 0 {
		dur.SetValue(strconv.FormatFloat(d.DurationSeconds, 'f', -1, 64))
	}

	f := &Form{
		message:     msg,
		duration:    dur,
		autoDismiss: d.AutoDismiss,
		focus:       FieldMessage,
		styles:      s,
	}
	f.SetPosition(d.Position)
	return f
}

// Init initializes the form
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Focus returns the focused field
func (f *Form) Focus() Field {
	return f.focus
}

// Editing reports whether keys are going to a text input
func (f *Form) Editing() bool {
	return f.focus == FieldMessage || f.focus == FieldDuration
}

// Blur leaves the text inputs, moving focus to the position selector
func (f *Form) Blur() {
	f.focus = FieldPosition
	f.syncFocus()
}

// Position returns the selected position
func (f *Form) Position() types.Position {
	return types.Positions()[f.positionIdx]
}

// SetPosition selects p; unknown positions leave the selection unchanged
func (f *Form) SetPosition(p types.Position) {
	for i, candidate := range types.Positions() {
		if candidate == p {
			f.positionIdx = i
			return
		}
	}
}

// AutoDismiss reports whether the auto-dismiss box is checked
func (f *Form) AutoDismiss() bool {
	return f.autoDismiss
}

// Request builds the toast request for severity from the current form state
func (f *Form) Request(severity types.Severity) svc.Request {
	return svc.Request{
		Position: f.Position(),
		Message:  f.message.Value(),
		Severity: severity,
		Checked:  f.autoDismiss,
		Duration: parseDuration(f.duration.Value()),
	}
}

// parseDuration returns 0 for anything that is not a number; the store
// then applies its default.
func parseDuration(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Update handles messages
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		f.moveFocus(1)
		return f, nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return f, nil
	}

	switch f.focus {
	case FieldMessage, FieldDuration:
		if keyMsg.String() == "enter" {
			f.moveFocus(1)
			return f, nil
		}
		return f, f.updateInputs(msg)

	case FieldAutoDismiss:
		switch keyMsg.String() {
		case " ", "enter", "x":
			f.autoDismiss = !f.autoDismiss
			f.syncFocus()
		}
		return f, nil

	case FieldPosition:
		n := len(types.Positions())
		switch keyMsg.String() {
		case "left", "h":
			f.positionIdx = (f.positionIdx - 1 + n) % n
		case "right", "l", " ", "enter":
			f.positionIdx = (f.positionIdx + 1) % n
		}
		return f, nil

	default:
		if keyMsg.String() == "enter" || keyMsg.String() == " " {
			return f, f.press(f.focus)
		}
	}

	return f, nil
}

// Press activates a button field directly, used by keyboard shortcuts
func (f *Form) Press(field Field) tea.Cmd {
	return f.press(field)
}

func (f *Form) press(field Field) tea.Cmd {
	switch field {
	case FieldSuccess:
		return spawn(f.Request(types.SeveritySuccess))
	case FieldError:
		return spawn(f.Request(types.SeverityError))
	case FieldWarn:
		return spawn(f.Request(types.SeverityWarn))
	case FieldClear:
		return func() tea.Msg { return ClearAllMsg{} }
	default:
		return nil
	}
}

func spawn(req svc.Request) tea.Cmd {
	return func() tea.Msg { return SpawnMsg{Request: req} }
}

func (f *Form) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case FieldMessage:
		f.message, cmd = f.message.Update(msg)
	case FieldDuration:
		f.duration, cmd = f.duration.Update(msg)
	}
	return cmd
}

// moveFocus steps focus by delta, skipping the duration input while
// auto-dismiss is off
func (f *Form) moveFocus(delta int) {
	next := f.focus
	for {
		next = Field((int(next) + delta + int(fieldCount)) % int(fieldCount))
		if next != FieldDuration || f.autoDismiss {
			break
		}
	}
	f.focus = next
	f.syncFocus()
}

// syncFocus points the text inputs' cursor at the focused field
func (f *Form) syncFocus() {
	if f.focus == FieldDuration && !f.autoDismiss {
		f.focus = FieldAutoDismiss
	}

	f.message.Blur()
	f.duration.Blur()
	switch f.focus {
	case FieldMessage:
		f.message.Focus()
	case FieldDuration:
		f.duration.Focus()
	}
}

// View renders the form
func (f *Form) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render("Toast Playground"))
	b.WriteString("\n")

	b.WriteString(f.label(FieldMessage, "Toast message"))
	b.WriteString("\n")
	b.WriteString(f.message.View())
	b.WriteString("\n\n")

	check := "[ ]"
	if f.autoDismiss {
		check = "[x]"
	}
	b.WriteString(f.label(FieldAutoDismiss, check+" Auto-dismiss"))
	b.WriteString("\n\n")

	if f.autoDismiss {
		b.WriteString(f.label(FieldDuration, "Duration (in second)"))
		b.WriteString("\n")
		b.WriteString(f.duration.View())
	} else {
		b.WriteString(f.styles.Disabled.Render("Duration (in second)"))
		b.WriteString("\n")
		b.WriteString(f.styles.Disabled.Render("disabled"))
	}
	b.WriteString("\n\n")

	b.WriteString(f.label(FieldPosition, "Toast position"))
	b.WriteString("\n")
	b.WriteString(f.renderPositionSelector())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		f.button(FieldSuccess, "Success Toast"), " ",
		f.button(FieldError, "Error Toast"),
	))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		f.button(FieldWarn, "Warning Toast"), " ",
		f.button(FieldClear, "Clear All Toast"),
	))

	return f.styles.Panel.Render(b.String())
}

func (f *Form) label(field Field, text string) string {
	if f.focus == field {
		return f.styles.LabelFocused.Render(text)
	}
	return f.styles.Label.Render(text)
}

func (f *Form) button(field Field, text string) string {
	if f.focus == field {
		return f.styles.ButtonActive.Render(text)
	}
	return f.styles.Button.Render(text)
}

// renderPositionSelector renders the selected position between arrows
func (f *Form) renderPositionSelector() string {
	style := f.styles.Label
	if f.focus == FieldPosition {
		style = f.styles.LabelFocused
	}
	return style.Render(fmt.Sprintf("◂ %s ▸", f.Position().Label()))
}
