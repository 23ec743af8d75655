// Package types contains shared types used across the application.
package types

// Mode represents the current input mode of the form
type Mode int

const (
	// ModeNormal routes keys to form navigation and shortcuts
	ModeNormal Mode = iota
	// ModeInsert routes keys to the focused text input
	ModeInsert
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}
