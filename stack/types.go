// Package stack type declarations: Stack, MinStack, and sentinel errors.
package stack

import "errors"

// Sentinel errors for stack operations and the algorithms built on them.
var (
	// ErrEmptyStack indicates Pop, Peek, or Min on a stack with no elements.
	ErrEmptyStack = errors.New("stack: empty stack")

	// ErrBadExpression indicates an RPN token stream that is not a valid
	// expression: unknown token, missing operands, or leftover operands.
	ErrBadExpression = errors.New("stack: malformed RPN expression")

	// ErrDivideByZero indicates an RPN division whose divisor evaluated to zero.
	ErrDivideByZero = errors.New("stack: division by zero")

	// ErrLengthMismatch indicates paired input slices of different lengths.
	ErrLengthMismatch = errors.New("stack: paired slices differ in length")
)

// Stack is a LIFO stack of ints. The zero value is an empty stack, ready to
// use. Not safe for concurrent use.
type Stack struct {
	items []int
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v int) { s.items = append(s.items, v) }

// Pop removes and returns the top element, or ErrEmptyStack.
func (s *Stack) Pop() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrEmptyStack
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return v, nil
}

// Peek returns the top element without removing it, or ErrEmptyStack.
func (s *Stack) Peek() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// Len returns the number of stacked elements.
func (s *Stack) Len() int { return len(s.items) }

// MinStack is a LIFO stack of ints that tracks its minimum. A second stack
// of running minima shadows the data: a value is pushed onto it when it is a
// new minimum (ties included) and popped when that value leaves the data
// stack, so Min is always the shadow's top. The zero value is ready to use.
// Not safe for concurrent use.
type MinStack struct {
	data   Stack
	minima Stack
}

// Push appends v, updating the tracked minimum.
func (m *MinStack) Push(v int) {
	m.data.Push(v)
	if top, err := m.minima.Peek(); err != nil || v <= top {
		m.minima.Push(v)
	}
}

// Pop removes and returns the top element, or ErrEmptyStack.
func (m *MinStack) Pop() (int, error) {
	v, err := m.data.Pop()
	if err != nil {
		return 0, err
	}
	if top, _ := m.minima.Peek(); top == v {
		_, _ = m.minima.Pop()
	}

	return v, nil
}

// Top returns the most recently pushed element, or ErrEmptyStack.
func (m *MinStack) Top() (int, error) { return m.data.Peek() }

// Min returns the smallest element currently stacked, or ErrEmptyStack.
func (m *MinStack) Min() (int, error) { return m.minima.Peek() }

// Len returns the number of stacked elements.
func (m *MinStack) Len() int { return m.data.Len() }
