package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/toastdemo/internal/ui/overlay"
)

// KeyMap holds the app-level bindings. Single-letter shortcuts only apply
// while no text input has focus.
type KeyMap struct {
	Quit          key.Binding
	ForceQuit     key.Binding
	Help          key.Binding
	Leave         key.Binding
	Success       key.Binding
	Error         key.Binding
	Warn          key.Binding
	ClearAll      key.Binding
	DismissNewest key.Binding
	DismissOldest key.Binding
	Redraw        key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit from anywhere")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Leave:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave text input")),
		Success:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "spawn success toast")),
		Error:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "spawn error toast")),
		Warn:          key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "spawn warning toast")),
		ClearAll:      key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all toasts")),
		DismissNewest: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss newest toast at position")),
		DismissOldest: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "dismiss oldest toast at position")),
		Redraw:        key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "redraw screen")),
	}
}

// formBindings documents the keys handled by the form itself
var formBindings = []key.Binding{
	key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
	key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("S-tab/↑", "previous field")),
	key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle / press")),
	key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change position")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press button")),
}

// HelpCategories groups the bindings for the help overlay
func (k KeyMap) HelpCategories() []overlay.KeyCategory {
	return []overlay.KeyCategory{
		{Name: "Form", Bindings: formBindings},
		{Name: "Toasts", Bindings: []key.Binding{k.Success, k.Error, k.Warn, k.ClearAll, k.DismissNewest, k.DismissOldest}},
		{Name: "Other", Bindings: []key.Binding{k.Leave, k.Help, k.Redraw, k.Quit, k.ForceQuit}},
	}
}
