package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toastdemo/internal/ui/styles"
)

// KeyCategory groups keybindings under a heading
type KeyCategory struct {
	Name     string
	Bindings []key.Binding
}

// HelpOverlay displays the keybinding reference
type HelpOverlay struct {
	categories []KeyCategory
	styles     *styles.Styles
	scroll     int
	viewHeight int
}

// NewHelpOverlay creates a help overlay listing categories
func NewHelpOverlay(categories []KeyCategory, s *styles.Styles) *HelpOverlay {
	return &HelpOverlay{
		categories: categories,
		styles:     s,
		viewHeight: 16,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, closeCmd
	case "j", "down":
		h.scroll = min(h.scroll+1, h.maxScroll())
	case "k", "up":
		h.scroll = max(h.scroll-1, 0)
	}
	return h, nil
}

func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, cat := range h.categories {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.OverlayTitle.UnsetMarginBottom().Render(cat.Name+":"))
		for _, b := range cat.Bindings {
			if !b.Enabled() {
				continue
			}
			help := b.Help()
			lines = append(lines, "  "+h.styles.MenuKey.Render(help.Key)+"  "+h.styles.MenuItem.Render(help.Desc))
		}
	}
	return lines
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-h.viewHeight)
}

// View renders the visible part of the reference
func (h *HelpOverlay) View() string {
	lines := h.lines()
	start := min(h.scroll, len(lines))
	end := min(start+h.viewHeight, len(lines))

	result := strings.Join(lines[start:end], "\n")
	if h.maxScroll() > 0 {
		result += "\n\n" + h.styles.Footer.Render("[j/k to scroll]")
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, h.viewHeight + 4
}
