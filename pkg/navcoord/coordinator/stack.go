package coordinator

import "slices"

// Stack is the ordered navigation path of a coordinator.
// Index 0 is the first pushed screen and the last entry is the visible one.
// The root screen is owned by the caller and never stored here.
type Stack[V comparable] struct {
	entries []V
}

// NewStack creates a new empty navigation stack.
func NewStack[V comparable]() *Stack[V] {
	return &Stack[V]{
		entries: make([]V, 0),
	}
}

// Push adds a screen on top of the stack.
func (s *Stack[V]) Push(screen V) {
	s.entries = append(s.entries, screen)
}

// Pop removes and returns the top screen.
// Returns false if the stack is empty.
func (s *Stack[V]) Pop() (V, bool) {
	var zero V
	if len(s.entries) == 0 {
		return zero, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top screen without removing it.
// Returns false if the stack is empty.
func (s *Stack[V]) Peek() (V, bool) {
	if len(s.entries) == 0 {
		var zero V
		return zero, false
	}
	return s.entries[len(s.entries)-1], true
}

// Truncate drops entries until at most n remain.
// Does nothing if the stack already holds n entries or fewer.
func (s *Stack[V]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(s.entries) {
		return
	}
	clear(s.entries[n:])
	s.entries = s.entries[:n]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[V]) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack[V]) Clear() {
	s.Truncate(0)
}

// Values returns a copy of the entries, bottom first.
func (s *Stack[V]) Values() []V {
	return slices.Clone(s.entries)
}
