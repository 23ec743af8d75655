package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack keeps open overlays; only the top one receives input
type Stack struct {
	overlays []Overlay
}

// NewStack creates an empty overlay stack
func NewStack() *Stack {
	return &Stack{}
}

// Push opens o above the current overlay and returns its Init command
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop closes the top overlay. Returns nil on an empty stack.
func (s *Stack) Pop() Overlay {
	top := s.Current()
	if top != nil {
		s.overlays = s.overlays[:len(s.overlays)-1]
	}
	return top
}

// Current returns the top overlay, or nil
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// IsEmpty returns true if no overlay is open
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Update routes msg to the top overlay. CloseOverlayMsg pops it instead.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	top := s.Current()
	if top == nil {
		return nil
	}
	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	next, cmd := top.Update(msg)
	if o, ok := next.(Overlay); ok {
		s.overlays[len(s.overlays)-1] = o
	}
	return cmd
}
