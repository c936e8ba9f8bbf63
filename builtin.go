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

// call executes a built-in word.  Words which take arguments pop them from
// the stack; there is no check for underflow.
func (d *Drawing) call(o op) {
	s := &d.Stack
	t := &d.Turtle
	switch o {
	case opColon:
		d.beginDefinition()
	case opSemicolon:
		d.endDefinition()

	case opAdd:
		b := s.Pop()
		s.setTop(s.Top() + b)
	case opSub:
		b := s.Pop()
		s.setTop(s.Top() - b)
	case opMul:
		b := s.Pop()
		s.setTop(s.Top() * b)
	case opDup:
		s.Push(s.Top())
	case opDrop:
		s.Pop()
	case opSwap:
		s.swap()
	case opOver:
		s.Push(s.Second())

	case opForward:
		t.forward(d.Path, s.Pop())
	case opBack:
		t.forward(d.Path, -s.Pop())
	case opLeft:
		t.turn(s.Pop())
	case opRight:
		t.turn(-s.Pop())
	case opNorth:
		t.jump(0, s.Pop())
	case opSouth:
		t.jump(0, -s.Pop())
	case opEast:
		t.jump(s.Pop(), 0)
	case opWest:
		t.jump(-s.Pop(), 0)
	case opArcLeft:
		angle := s.Pop()
		radius := s.Pop()
		t.arc(d.Path, angle, radius)
	case opArcRight:
		angle := s.Pop()
		radius := s.Pop()
		t.arc(d.Path, -angle, radius)
	case opDot:
		t.dot(d.Path, s.Pop())

	case opPenDown:
		t.PenDown = true
		t.newSubpath = true
	case opPenUp:
		t.PenDown = false
	case opSetHeading:
		t.Heading = normalizeAngle(s.Pop())
	case opSetX:
		t.Pos.X = s.Pop()
		t.newSubpath = true
	case opSetY:
		t.Pos.Y = s.Pop()
		t.newSubpath = true

	case opTraceOn:
		d.tracing = true
	case opTraceOff:
		d.tracing = false
	case opNop:
		// useful as a marker in trace output
	}
}
