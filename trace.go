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

// traceWidth is the column where the turtle state starts in trace lines.
const traceWidth = 30

// trace logs a line showing the word about to run, the turtle and the
// stack.  Nested calls are indented.
func (d *Drawing) trace(word string, depth int) {
	d.log.Printf("%s", d.traceLine(word, depth))
}

func (d *Drawing) traceLine(word string, depth int) string {
	indent := strings.Repeat("   ", depth)
	pad := strings.Repeat(".", max(traceWidth+1-len(indent)-len(word), 0))
	t := &d.Turtle
	return fmt.Sprintf("%s%s %s (%7.1f,%7.1f,%7.1f)  %s",
		indent, word, pad, t.Pos.X, t.Pos.Y, t.Heading, d.Stack.String())
}
