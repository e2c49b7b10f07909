package chip8

import "fmt"

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Stack holds the return addresses of subroutine calls.
type Stack struct {
	entries [StackDepth]uint16
	depth   int
}

// Push adds a return address to the top of the stack.
func (s *Stack) Push(address uint16) error {
	if s.depth == StackDepth {
		return fmt.Errorf("%w: depth %d", ErrStackOverflow, s.depth)
	}
	s.entries[s.depth] = address
	s.depth++
	return nil
}

// Pop removes and returns the address at the top of the stack.
func (s *Stack) Pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.entries[s.depth], nil
}

// Depth returns the number of addresses on the stack.
func (s *Stack) Depth() int {
	return s.depth
}

// Entries returns a copy of the stack content, bottom first.
func (s *Stack) Entries() []uint16 {
	entries := make([]uint16, s.depth)
	copy(entries, s.entries[:s.depth])
	return entries
}

func (s *Stack) reset() {
	*s = Stack{}
}
