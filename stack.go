// seehuhn.de/go/draw - a turtle graphics language inspired by Forth and Logo
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package draw

import (
	"fmt"
	"strings"
)

// stackRing is the number of slots below the two cached top values.
const stackRing = 14

// StackCapacity is the number of values the data stack can hold.
// Pushing more values silently overwrites the deepest one.
const StackCapacity = stackRing + 2

// Stack is the data stack of the interpreter.
//
// The two top-most values are kept in separate fields, the remaining values
// live in a ring buffer.  Stack operations never fail: a push onto a full
// stack overwrites the oldest value, and a pop from an empty stack returns
// whatever stale value occupies the slot.  Depth may become negative in the
// latter case, which is shown in trace output.
//
// The zero value is an empty stack.
type Stack struct {
	top, second float64
	ring        [stackRing]float64
	sp          int
	depth       int
}

// Reset empties the stack and clears all slots.
func (s *Stack) Reset() {
	*s = Stack{}
}

// Push puts x on top of the stack.
func (s *Stack) Push(x float64) {
	s.depth++
	if s.depth > StackCapacity {
		s.depth = StackCapacity
	}
	s.sp = (s.sp + 1) % stackRing
	s.ring[s.sp] = s.second
	s.second = s.top
	s.top = x
}

// Pop removes the top value from the stack and returns it.
func (s *Stack) Pop() float64 {
	x := s.top
	s.depth--
	s.top = s.second
	s.second = s.ring[s.sp]
	s.sp = (s.sp + stackRing - 1) % stackRing
	return x
}

// Top returns the top value without removing it.
func (s *Stack) Top() float64 {
	return s.top
}

// Second returns the value below the top without removing it.
func (s *Stack) Second() float64 {
	return s.second
}

// setTop replaces the top value in place.
func (s *Stack) setTop(x float64) {
	s.top = x
}

func (s *Stack) swap() {
	s.top, s.second = s.second, s.top
}

// Depth returns the number of values on the stack.
// The result is negative after more values have been popped than pushed.
func (s *Stack) Depth() int {
	return s.depth
}

// Values returns the values currently on the stack, starting with the
// deepest value and ending with the top.
func (s *Stack) Values() []float64 {
	n := s.depth
	if n <= 0 {
		return nil
	}
	res := make([]float64, 0, n)
	for i := 0; i < n-2; i++ {
		res = append(res, s.ring[s.slot(n-3-i)])
	}
	if n > 1 {
		res = append(res, s.second)
	}
	return append(res, s.top)
}

// slot returns the ring buffer index of the value k places below the
// second value.
func (s *Stack) slot(k int) int {
	return (stackRing + s.sp - k) % stackRing
}

// String formats the stack the way it is shown in trace output.
func (s *Stack) String() string {
	switch {
	case s.depth < 0:
		return fmt.Sprintf("stack is %d under", -s.depth)
	case s.depth == 0:
		return "empty stack"
	}
	var ss []string
	for _, x := range s.Values() {
		ss = append(ss, fmt.Sprintf("%.1f", x))
	}
	return strings.Join(ss, " ")
}
