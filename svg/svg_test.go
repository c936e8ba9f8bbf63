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

package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/draw"
)

func drawing(t *testing.T, code string) *draw.Path {
	t.Helper()
	var log []string
	intp := draw.NewInterpreter(draw.WithLogf(func(format string, args ...any) {
		log = append(log, format)
	}))
	d := intp.Run(code)
	if len(log) > 0 {
		t.Fatalf("unexpected log output %q", log)
	}
	return d.Path
}

func TestPathData(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"", ""},
		{"0 H= 10 F", "M 0.00,0.00\nL 10.00,0.00"},
		{"0 H= 5 N 2.5 F", "M 0.00,-5.00\nL 2.50,-5.00"},
		{"0 H= 10 90 ArcL", "M 0.00,0.00\nA 10.00 10.00 0 0 0 10.00,-10.00"},
		{"0 H= 10 90 ArcR", "M 0.00,0.00\nA 10.00 10.00 0 0 1 10.00,10.00"},
		{"0 H= 10 270 ArcL", "M 0.00,0.00\nA 10.00 10.00 0 1 0 -10.00,-10.00"},
	}
	for _, c := range cases {
		got := PathData(drawing(t, c.code))
		if got != c.want {
			t.Errorf("%q: got %q, want %q", c.code, got, c.want)
		}
	}
}

func TestViewBox(t *testing.T) {
	p := drawing(t, "0 H= 10 F 90 L 5 F")
	want := rect.Rect{LLx: -1, LLy: -6, URx: 11, URy: 1}
	if d := cmp.Diff(want, ViewBox(p, 1), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	// a horizontal line still gets a view box of positive height
	p = drawing(t, "0 H= 10 F")
	box := ViewBox(p, 0)
	if box.URy-box.LLy < 1 {
		t.Errorf("view box %v has no height", box)
	}
}

func TestWrite(t *testing.T) {
	p := drawing(t, "0 H= 10 F 90 L 5 F")
	buf := &bytes.Buffer{}
	err := Write(buf, p, &Options{Margin: 1, StrokeWidth: 2})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{
		`viewBox="-1.00 -6.00 12.00 7.00"`,
		`stroke-width="2.00"`,
		`d="M 0.00,0.00` + "\n" + `L 10.00,0.00` + "\n" + `L 10.00,-5.00"`,
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q:\n%s", s, out)
		}
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("unterminated document:\n%s", out)
	}
}

func TestWriteEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Write(buf, drawing(t, "PU 10 F"), nil)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `viewBox="-256.00 -256.00 512.00 512.00"`) {
		t.Errorf("unexpected view box:\n%s", out)
	}
	if strings.Contains(out, "<path") {
		t.Errorf("empty drawing has a path element:\n%s", out)
	}
}
