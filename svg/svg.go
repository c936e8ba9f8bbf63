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

// Package svg converts drawings into SVG path data and documents.
//
// Drawings use a coordinate system where the y-axis points up.  SVG uses
// a y-axis pointing down, so all coordinates are mirrored at the x-axis
// on output.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw"
)

// Flip maps user space to SVG space.
var Flip = matrix.Matrix{1, 0, 0, -1, 0, 0}

// DefaultSize is the side length of the view box used for empty drawings.
const DefaultSize = 512

// PathData formats p as the value of the "d" attribute of an SVG path
// element, one command per line.
func PathData(p *draw.Path) string {
	var lines []string
	for _, seg := range p.Segments {
		to := apply(Flip, seg.To)
		switch seg.Cmd {
		case draw.CmdMoveTo:
			lines = append(lines, "M "+point(to))
		case draw.CmdLineTo:
			lines = append(lines, "L "+point(to))
		case draw.CmdArcTo:
			large := "0"
			if seg.LargeArc() {
				large = "1"
			}
			// Flip reverses the orientation, so counter-clockwise arcs
			// in user space are drawn with sweep flag 0.
			sweep := "1"
			if seg.Sweep > 0 {
				sweep = "0"
			}
			r := num(seg.Radius)
			lines = append(lines,
				fmt.Sprintf("A %s %s 0 %s %s %s", r, r, large, sweep, point(to)))
		}
	}
	return strings.Join(lines, "\n")
}

// Options control the layout of an SVG document.
type Options struct {
	// Margin is added around the bounding box of the drawing.
	Margin float64

	// StrokeWidth is the line width.  If zero, 1 is used.
	StrokeWidth float64
}

// Write writes a standalone SVG document showing p.
// If opt is nil, default options are used.
func Write(w io.Writer, p *draw.Path, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	strokeWidth := opt.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 1
	}

	box := ViewBox(p, opt.Margin)
	width := num(box.URx - box.LLx)
	height := num(box.URy - box.LLy)
	_, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%s %s %s %s\" width=\"%s\" height=\"%s\">\n",
		num(box.LLx), num(box.LLy), width, height, width, height)
	if err != nil {
		return err
	}
	if !p.IsEmpty() {
		_, err = fmt.Fprintf(w,
			"<path fill=\"none\" stroke=\"currentColor\" stroke-width=\"%s\" stroke-linecap=\"round\" stroke-linejoin=\"round\" d=\"%s\"/>\n",
			num(strokeWidth), PathData(p))
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "</svg>\n")
	return err
}

// ViewBox returns the rectangle in SVG space which covers p, enlarged by
// margin on every side.  Empty paths get a square of DefaultSize centered
// on the origin.
func ViewBox(p *draw.Path, margin float64) rect.Rect {
	if p.IsEmpty() {
		return rect.Rect{
			LLx: -DefaultSize / 2,
			LLy: -DefaultSize / 2,
			URx: DefaultSize / 2,
			URy: DefaultSize / 2,
		}
	}

	box := p.Data().Iter().Transform(Flip).BBox()
	box.LLx -= margin
	box.LLy -= margin
	box.URx += margin
	box.URy += margin

	// A straight horizontal or vertical line has an empty bounding box.
	if box.URx-box.LLx < 1 {
		box.LLx -= 0.5
		box.URx += 0.5
	}
	if box.URy-box.LLy < 1 {
		box.LLy -= 0.5
		box.URy += 0.5
	}
	return box
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func point(v vec.Vec2) string {
	return num(v.X) + "," + num(v.Y)
}

// num formats a coordinate with two decimals.
func num(x float64) string {
	s := strconv.FormatFloat(x, 'f', 2, 64)
	if s == "-0.00" {
		s = "0.00"
	}
	return s
}
