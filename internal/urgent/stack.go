// Package urgent implements the last-in-first-out stack of urgent task ids.
package urgent

import "errors"

// ErrEmptyStack is returned by Pop when no id is on the stack.
var ErrEmptyStack = errors.New("no urgent tasks")

// Stack holds task ids only; it never validates them against a store.
type Stack struct {
	ids []int
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push appends id to the top of the stack.
func (s *Stack) Push(id int) {
	s.ids = append(s.ids, id)
}

// Pop removes and returns the most recently pushed id.
func (s *Stack) Pop() (int, error) {
	n := len(s.ids)
	if n == 0 {
		return 0, ErrEmptyStack
	}
	id := s.ids[n-1]
	s.ids = s.ids[:n-1]
	return id, nil
}

// Len reports how many ids are on the stack.
func (s *Stack) Len() int {
	return len(s.ids)
}
