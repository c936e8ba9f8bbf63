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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Command is the type of a path segment.
type Command uint8

// These are the supported path commands.
const (
	CmdMoveTo Command = iota + 1
	CmdLineTo
	CmdArcTo
)

func (c Command) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdArcTo:
		return "ArcTo"
	default:
		return "Command(?)"
	}
}

// Segment is one drawing command.
//
// All coordinates are in user space, where the y-axis points up and
// angles are measured in degrees counter-clockwise from the positive
// x-axis.
type Segment struct {
	Cmd Command
	To  vec.Vec2 // end point

	// The following fields are only used for CmdArcTo.
	Center vec.Vec2
	Radius float64 // always positive
	Start  float64 // direction from Center to the start point
	Sweep  float64 // positive for counter-clockwise arcs, |Sweep| < 360
}

// LargeArc reports whether an arc segment sweeps more than 180 degrees.
func (seg *Segment) LargeArc() bool {
	return math.Abs(seg.Sweep) > 180
}

// Path is the sequence of drawing commands produced by a program run.
type Path struct {
	Segments []Segment
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(to vec.Vec2) {
	p.Segments = append(p.Segments, Segment{Cmd: CmdMoveTo, To: to})
}

// LineTo adds a straight line to the current subpath.
func (p *Path) LineTo(to vec.Vec2) {
	p.Segments = append(p.Segments, Segment{Cmd: CmdLineTo, To: to})
}

// ArcTo adds a circular arc to the current subpath.  The arc lies on the
// circle with the given center and radius, starts in direction start (in
// degrees, seen from the center) and sweeps by the given angle.
// A negative radius is the same as a positive one, rotated by 180 degrees.
func (p *Path) ArcTo(center vec.Vec2, radius, start, sweep float64) {
	if radius < 0 {
		radius = -radius
		start += 180
	}
	start = normalizeAngle(start)
	p.Segments = append(p.Segments, Segment{
		Cmd:    CmdArcTo,
		To:     polar(center, radius, start+sweep),
		Center: center,
		Radius: radius,
		Start:  start,
		Sweep:  sweep,
	})
}

// IsEmpty returns true if the path draws nothing.
func (p *Path) IsEmpty() bool {
	for _, seg := range p.Segments {
		if seg.Cmd != CmdMoveTo {
			return false
		}
	}
	return true
}

// Data converts the path into a geom path.  Circular arcs are
// approximated by cubic Bézier curves, each covering at most 90 degrees.
func (p *Path) Data() *path.Data {
	res := &path.Data{}
	for _, seg := range p.Segments {
		switch seg.Cmd {
		case CmdMoveTo:
			res.MoveTo(seg.To)
		case CmdLineTo:
			res.LineTo(seg.To)
		case CmdArcTo:
			appendArc(res, &seg)
		}
	}
	return res
}

// BBox returns the bounding box of the path in user space.
// The bounding box of an empty path is the zero rectangle.
func (p *Path) BBox() rect.Rect {
	if p.IsEmpty() {
		return rect.Rect{}
	}
	return p.Data().Iter().BBox()
}

func appendArc(res *path.Data, seg *Segment) {
	n := int(math.Ceil(math.Abs(seg.Sweep)/90 - 1e-9))
	if n < 1 || n > 4 {
		n = 1
	}
	step := seg.Sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step*degree/4) * seg.Radius

	a0 := seg.Start
	p0 := polar(seg.Center, seg.Radius, a0)
	for i := 1; i <= n; i++ {
		a1 := seg.Start + float64(i)*step
		p3 := polar(seg.Center, seg.Radius, a1)
		if i == n {
			p3 = seg.To
		}
		s0, c0 := math.Sincos(a0 * degree)
		s1, c1 := math.Sincos(a1 * degree)
		p1 := vec.Vec2{X: p0.X - k*s0, Y: p0.Y + k*c0}
		p2 := vec.Vec2{X: p3.X + k*s1, Y: p3.Y - k*c1}
		res.CubeTo(p1, p2, p3)
		a0, p0 = a1, p3
	}
}

// degree converts degrees to radians.
const degree = math.Pi / 180

// polar returns the point at distance r from c, in direction angle
// (in degrees).
func polar(c vec.Vec2, r, angle float64) vec.Vec2 {
	s, co := math.Sincos(angle * degree)
	return vec.Vec2{X: c.X + r*co, Y: c.Y + r*s}
}
