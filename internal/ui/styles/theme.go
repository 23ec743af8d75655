package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette
var (
	Base     = lipgloss.Color("#24273a")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	Red    = lipgloss.Color("#ed8796")
	Yellow = lipgloss.Color("#eed49f")
	Green  = lipgloss.Color("#a6da95")
	Teal   = lipgloss.Color("#8bd5ca")
	Blue   = lipgloss.Color("#8aadf4")
)

// SeverityColors maps toast severities to accent colors
var SeverityColors = map[string]lipgloss.Color{
	"success": Green,
	"error":   Red,
	"warn":    Yellow,
}
