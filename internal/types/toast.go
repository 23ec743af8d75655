package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parsing toast enums from user input
var (
	ErrUnknownPosition = errors.New("unknown toast position")
	ErrUnknownSeverity = errors.New("unknown toast severity")
)

// Position is the screen corner a toast stacks in
type Position int

const (
	BottomRight Position = iota
	BottomLeft
	TopRight
	TopLeft
	TopCenter
)

// positionNames is indexed by Position
var positionNames = [...]string{
	BottomRight: "bottom-right",
	BottomLeft:  "bottom-left",
	TopRight:    "top-right",
	TopLeft:     "top-left",
	TopCenter:   "top-center",
}

// Positions returns all positions in selector order
func Positions() []Position {
	return []Position{BottomRight, BottomLeft, TopLeft, TopRight, TopCenter}
}

// Valid reports whether p is one of the five known positions
func (p Position) Valid() bool {
	return p >= BottomRight && p <= TopCenter
}

// String returns the kebab-case name of the position
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("position(%d)", int(p))
	}
	return positionNames[p]
}

// Label returns the human-readable name shown in the form
func (p Position) Label() string {
	switch p {
	case BottomRight:
		return "Bottom Right"
	case BottomLeft:
		return "Bottom Left"
	case TopRight:
		return "Top Right"
	case TopLeft:
		return "Top Left"
	case TopCenter:
		return "Top Center"
	default:
		return p.String()
	}
}

// MarshalText implements encoding.TextMarshaler
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPosition, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePosition converts a kebab-case name into a Position
func ParsePosition(s string) (Position, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

// Severity is the semantic category of a toast
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
	SeverityWarn
)

// String returns the lowercase name of the severity
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a name into a Severity. "warning" is accepted as
// an alias of "warn".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success":
		return SeveritySuccess, nil
	case "error":
		return SeverityError, nil
	case "warn", "warning":
		return SeverityWarn, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}
