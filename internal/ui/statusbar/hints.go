package statusbar

import "github.com/riordanpawley/toastdemo/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "Tab: next  s/e/w: spawn  C: clear  d: dismiss  ?: help  q: quit"
	case types.ModeInsert:
		return "Type to edit  Enter/Tab: next  Esc: done"
	default:
		return ""
	}
}
