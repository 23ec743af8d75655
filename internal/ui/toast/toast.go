// Package toast renders the five toast stacks around the main view.
package toast

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	svc "github.com/riordanpawley/toastdemo/internal/services/toast"
	"github.com/riordanpawley/toastdemo/internal/types"
	"github.com/riordanpawley/toastdemo/internal/ui/styles"
)

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles     *styles.Styles
	width      int
	maxVisible int
	now        func() time.Time
}

// New creates a new ToastRenderer. width is the width of a single toast;
// maxVisible caps the toasts drawn per position.
func New(styles *styles.Styles, width, maxVisible int) *ToastRenderer {
	return &ToastRenderer{
		styles:     styles,
		width:      width,
		maxVisible: maxVisible,
		now:        time.Now,
	}
}

// WithClock overrides the clock used for countdowns
func (r *ToastRenderer) WithClock(now func() time.Time) *ToastRenderer {
	r.now = now
	return r
}

// RenderStack renders one position's toasts in display order.
// Returns empty string if no toasts to display.
func (r *ToastRenderer) RenderStack(entries []svc.Entry, align lipgloss.Position) string {
	if len(entries) == 0 {
		return ""
	}

	visible := entries
	hidden := 0
	if r.maxVisible > 0 && len(entries) > r.maxVisible {
		hidden = len(entries) - r.maxVisible
		visible = entries[hidden:]
	}

	rendered := make([]string, 0, len(visible)+1)
	if hidden > 0 {
		// Oldest toasts are summarised so new ones stay on screen
		more := r.styles.ToastMeta.Width(r.width).Align(align).Render(fmt.Sprintf("+%d more", hidden))
		rendered = append(rendered, more)
	}
	for _, e := range visible {
		rendered = append(rendered, r.renderEntry(e))
	}

	return lipgloss.JoinVertical(align, rendered...)
}

func (r *ToastRenderer) renderEntry(e svc.Entry) string {
	meta := e.Severity.String()
	if e.AutoDismiss() {
		meta += fmt.Sprintf(" · %.1fs", e.Remaining(r.now()).Seconds())
	}
	body := e.Message + "\n" + r.styles.ToastMeta.Render(meta)
	// Width includes padding; the border adds two more columns
	return r.styles.Toast(e.Severity).Width(max(r.width-2, 1)).Render(body)
}

// Layout places the toast stacks around base: the three top positions
// above it, the two bottom positions below. The result fills width x height
// when base fits.
func (r *ToastRenderer) Layout(base string, snap svc.Snapshot, width, height int) string {
	leftW := width / 3
	rightW := width / 3
	centerW := width - leftW - rightW

	topLeft := r.RenderStack(snap[types.TopLeft], lipgloss.Left)
	topCenter := r.RenderStack(snap[types.TopCenter], lipgloss.Center)
	topRight := r.RenderStack(snap[types.TopRight], lipgloss.Right)
	topH := maxHeight(topLeft, topCenter, topRight)

	bottomLeft := r.RenderStack(snap[types.BottomLeft], lipgloss.Left)
	bottomRight := r.RenderStack(snap[types.BottomRight], lipgloss.Right)
	bottomH := maxHeight(bottomLeft, bottomRight)

	var rows []string
	if topH > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.Place(leftW, topH, lipgloss.Left, lipgloss.Top, topLeft),
			lipgloss.Place(centerW, topH, lipgloss.Center, lipgloss.Top, topCenter),
			lipgloss.Place(rightW, topH, lipgloss.Right, lipgloss.Top, topRight),
		))
	}

	midH := max(height-topH-bottomH, lipgloss.Height(base))
	rows = append(rows, lipgloss.Place(width, midH, lipgloss.Center, lipgloss.Center, base))

	if bottomH > 0 {
		halfW := width / 2
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Bottom,
			lipgloss.Place(halfW, bottomH, lipgloss.Left, lipgloss.Bottom, bottomLeft),
			lipgloss.Place(width-halfW, bottomH, lipgloss.Right, lipgloss.Bottom, bottomRight),
		))
	}

	return strings.Join(rows, "\n")
}

func maxHeight(blocks ...string) int {
	h := 0
	for _, b := range blocks {
		if b == "" {
			continue
		}
		h = max(h, lipgloss.Height(b))
	}
	return h
}
