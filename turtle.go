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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Turtle is the cursor moved by the motion words.
//
// The turtle lives in user space: the y-axis points up, a heading of 0
// points along the positive x-axis and headings grow counter-clockwise.
// Consequently "L" increases the heading and "R" decreases it.
type Turtle struct {
	Pos     vec.Vec2
	Heading float64 // degrees, in [0, 360)
	PenDown bool

	// newSubpath is set when the next visible segment must start
	// with a MoveTo.
	newSubpath bool
}

// reset puts the turtle at the origin, facing up, with the pen down.
func (t *Turtle) reset() {
	*t = Turtle{
		Heading:    90,
		PenDown:    true,
		newSubpath: true,
	}
}

// forward moves the turtle by dist along its heading, drawing a line
// if the pen is down.
func (t *Turtle) forward(p *Path, dist float64) {
	to := polar(t.Pos, dist, t.Heading)
	t.lineTo(p, to)
}

func (t *Turtle) lineTo(p *Path, to vec.Vec2) {
	if t.PenDown {
		t.startSubpath(p)
		p.LineTo(to)
	}
	t.Pos = to
}

func (t *Turtle) startSubpath(p *Path) {
	if t.newSubpath {
		p.MoveTo(t.Pos)
		t.newSubpath = false
	}
}

// turn changes the heading by angle degrees, counter-clockwise.
func (t *Turtle) turn(angle float64) {
	t.Heading = normalizeAngle(t.Heading + angle)
}

// jump moves the turtle without drawing.
func (t *Turtle) jump(dx, dy float64) {
	t.Pos.X += dx
	t.Pos.Y += dy
	t.newSubpath = true
}

// arc moves the turtle along a circular arc.  The sign of angle selects
// the direction: positive angles turn left.  The center of the arc is at
// distance radius from the turtle, perpendicular to the heading.
func (t *Turtle) arc(p *Path, angle, radius float64) {
	if angle == 0 {
		return
	}
	if math.Mod(angle, 360) == 0 {
		// A full circle has the same start and end point, so it cannot
		// be given as a single arc.
		half := math.Copysign(180, angle)
		t.arc(p, half, radius)
		t.arc(p, half, radius)
		return
	}
	angle = math.Mod(angle, 360)

	centerBearing := t.Heading + 90
	if angle < 0 {
		centerBearing = t.Heading - 90
	}
	center := polar(t.Pos, radius, centerBearing)
	startBearing := centerBearing + 180

	if t.PenDown {
		t.startSubpath(p)
		p.ArcTo(center, radius, startBearing, angle)
	}
	t.Pos = polar(center, radius, startBearing+angle)
	t.turn(angle)
}

// dot draws a full circle of the given radius around the turtle.  The
// turtle itself does not move.
func (t *Turtle) dot(p *Path, radius float64) {
	if radius <= 0 || !t.PenDown {
		return
	}
	p.MoveTo(vec.Vec2{X: t.Pos.X + radius, Y: t.Pos.Y})
	p.ArcTo(t.Pos, radius, 0, 180)
	p.ArcTo(t.Pos, radius, 180, 180)
	t.newSubpath = true
}

// normalizeAngle maps an angle in degrees into the range [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
