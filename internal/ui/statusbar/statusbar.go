// Package statusbar renders the one-line bar below the toast playground.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toastdemo/internal/types"
	"github.com/riordanpawley/toastdemo/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	counts map[types.Position]int
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithCounts sets the number of active toasts per position
func (sb StatusBar) WithCounts(counts map[types.Position]int) StatusBar {
	sb.counts = counts
	return sb
}

// shortNames abbreviates positions for the counter
var shortNames = map[types.Position]string{
	types.TopLeft:     "TL",
	types.TopCenter:   "TC",
	types.TopRight:    "TR",
	types.BottomLeft:  "BL",
	types.BottomRight: "BR",
}

// Counts renders "TL:0 TC:1 ..." in screen order
func (sb StatusBar) Counts() string {
	if sb.counts == nil {
		return ""
	}
	order := []types.Position{types.TopLeft, types.TopCenter, types.TopRight, types.BottomLeft, types.BottomRight}
	parts := make([]string, 0, len(order))
	for _, p := range order {
		parts = append(parts, fmt.Sprintf("%s:%d", shortNames[p], sb.counts[p]))
	}
	return strings.Join(parts, " ")
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")
	separator := sb.styles.StatusHint.Render(" │ ")

	blocks := []string{modeBadge}
	if hints := GetHints(sb.mode); hints != "" {
		blocks = append(blocks, separator, sb.styles.StatusHint.Render(hints))
	}
	if counts := sb.Counts(); counts != "" {
		blocks = append(blocks, separator, sb.styles.StatusInfo.Render(counts))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, blocks...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
