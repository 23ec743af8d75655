package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toastdemo/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	// Form panel
	Panel        lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Disabled     lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	MenuItem     lipgloss.Style
	MenuKey      lipgloss.Style
	Footer       lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
	ToastMeta    lipgloss.Style
}

func toastStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1)
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Teal).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(Subtext0),

		LabelFocused: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Disabled: lipgloss.NewStyle().
			Foreground(Overlay0),

		Button: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface1).
			Padding(0, 1),

		ButtonActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Teal).
			Bold(true).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Overlay1),

		ToastInfo:    toastStyle(Blue),
		ToastSuccess: toastStyle(SeverityColors["success"]),
		ToastWarning: toastStyle(SeverityColors["warn"]),
		ToastError:   toastStyle(SeverityColors["error"]),

		ToastMeta: lipgloss.NewStyle().
			Foreground(Overlay1),
	}
}

// Toast returns the appropriate style for a toast severity
func (s *Styles) Toast(severity types.Severity) lipgloss.Style {
	switch severity {
	case types.SeveritySuccess:
		return s.ToastSuccess
	case types.SeverityWarn:
		return s.ToastWarning
	case types.SeverityError:
		return s.ToastError
	default:
		return s.ToastInfo
	}
}
