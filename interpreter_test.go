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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
)

// logRecorder collects log lines.
type logRecorder struct {
	lines []string
}

func (r *logRecorder) logf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func run(code string, opts ...Option) (*Drawing, []string) {
	rec := &logRecorder{}
	intp := NewInterpreter(append(opts, WithLogf(rec.logf))...)
	d := intp.Run(code)
	return d, rec.lines
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestArithmetic(t *testing.T) {
	cases := []struct {
		code string
		want []float64
	}{
		{"1 2 +", []float64{3}},
		{"5 3 -", []float64{2}},
		{"4 2.5 *", []float64{10}},
		{"1 dup", []float64{1, 1}},
		{"1 2 drop", []float64{1}},
		{"1 2 swap", []float64{2, 1}},
		{"1 2 over", []float64{1, 2, 1}},
		{"1 2 3 + *", []float64{5}},
	}
	for _, c := range cases {
		d, log := run(c.code)
		if len(log) > 0 {
			t.Errorf("%q: unexpected log %q", c.code, log)
		}
		if diff := cmp.Diff(c.want, d.Stack.Values()); diff != "" {
			t.Errorf("%q: %s", c.code, diff)
		}
	}
}

func TestUnknownWord(t *testing.T) {
	d, log := run("1 2 foo 3 +")
	if diff := cmp.Diff([]string{"foo?"}, log); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]float64{1, 5}, d.Stack.Values()); diff != "" {
		t.Error(diff)
	}
}

func TestCaseSensitive(t *testing.T) {
	_, log := run("1 f DUP")
	if diff := cmp.Diff([]string{"f?", "DUP?"}, log); diff != "" {
		t.Error(diff)
	}
}

func TestDefinition(t *testing.T) {
	d, log := run(": sq dup * ; 3 sq")
	if len(log) > 0 {
		t.Errorf("unexpected log %q", log)
	}
	if diff := cmp.Diff([]float64{9}, d.Stack.Values()); diff != "" {
		t.Error(diff)
	}
	body, ok := d.Definition("sq")
	if !ok {
		t.Fatal("sq is not defined")
	}
	if diff := cmp.Diff([]string{"dup", "*"}, body); diff != "" {
		t.Error(diff)
	}
}

func TestRedefinition(t *testing.T) {
	d, _ := run(": a 1 ; : a 2 ; a")
	if diff := cmp.Diff([]float64{2}, d.Stack.Values()); diff != "" {
		t.Error(diff)
	}
}

func TestLateBinding(t *testing.T) {
	// b refers to a by name, so redefining a changes b
	d, _ := run(": a 1 ; : b a ; : a 2 ; b")
	if diff := cmp.Diff([]float64{2}, d.Stack.Values()); diff != "" {
		t.Error(diff)
	}
}

func TestRecursion(t *testing.T) {
	d, log := run(": loop loop ; loop 7")
	if diff := cmp.Diff([]string{"call stack too deep: loop"}, log); diff != "" {
		t.Error(diff)
	}
	// the rest of the program still runs
	if diff := cmp.Diff([]float64{7}, d.Stack.Values()); diff != "" {
		t.Error(diff)
	}
}

func TestMutualRecursion(t *testing.T) {
	_, log := run(": b NOP ; : a b ; : b a ; a")
	if diff := cmp.Diff([]string{"call stack too deep: a"}, log); diff != "" {
		t.Error(diff)
	}
}

func TestMaxCallDepth(t *testing.T) {
	// Each call to "inc" nests one level deeper.  The body of the fifth
	// call is beyond the limit, so all three of its words are rejected.
	code := ": inc 1 + inc ; 0 inc"
	d, log := run(code, WithMaxCallDepth(5))
	want := []string{
		"call stack too deep: 1",
		"call stack too deep: +",
		"call stack too deep: inc",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]float64{4}, d.Stack.Values()); diff != "" {
		t.Error(diff)
	}
}

func TestNestedColon(t *testing.T) {
	d, log := run(": x 1 : 2 ; x 5")
	if diff := cmp.Diff([]string{":?", "x?"}, log); diff != "" {
		t.Error(diff)
	}
	if d.IsDefined("x") {
		t.Error("invalid definition was stored")
	}
	if diff := cmp.Diff([]float64{5}, d.Stack.Values()); diff != "" {
		t.Error(diff)
	}
}

func TestBadDefinition(t *testing.T) {
	d, log := run(": y 1 bogus 2 ; y 7")
	if diff := cmp.Diff([]string{"bogus?", "y?"}, log); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]float64{7}, d.Stack.Values()); diff != "" {
		t.Error(diff)
	}
}

func TestUnfinishedDefinition(t *testing.T) {
	d, log := run(": z 1 2")
	if len(log) > 0 {
		t.Errorf("unexpected log %q", log)
	}
	if !d.Compiling() {
		t.Error("not in compile mode")
	}
	if d.IsDefined("z") {
		t.Error("unfinished definition was stored")
	}
	if d.Stack.Depth() != 0 {
		t.Errorf("stack depth %d, want 0", d.Stack.Depth())
	}
}

func TestStraySemicolon(t *testing.T) {
	d, log := run(": a 1 ; ; a")
	if len(log) > 0 {
		t.Errorf("unexpected log %q", log)
	}
	if diff := cmp.Diff([]string{"a"}, d.Words()); diff != "" {
		t.Error(diff)
	}
}

func TestRunResets(t *testing.T) {
	rec := &logRecorder{}
	intp := NewInterpreter(WithLogf(rec.logf))
	intp.Run(": a 1 ; a 10 F PU 45 L")
	d := intp.Run("a")
	if diff := cmp.Diff([]string{"a?"}, rec.lines); diff != "" {
		t.Error(diff)
	}
	if d.Stack.Depth() != 0 || len(d.Path.Segments) != 0 {
		t.Error("state was carried over")
	}
	want := Turtle{Heading: 90, PenDown: true, newSubpath: true}
	if d.Turtle != want {
		t.Errorf("turtle = %+v, want %+v", d.Turtle, want)
	}
}

func TestForward(t *testing.T) {
	d, log := run("0 0 0 H= 0 X= 0 Y= 10 F")
	if len(log) > 0 {
		t.Errorf("unexpected log %q", log)
	}
	want := []Segment{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 0, Y: 0}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 10, Y: 0}},
	}
	if diff := cmp.Diff(want, d.Path.Segments, approx); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(vec.Vec2{X: 10, Y: 0}, d.Turtle.Pos, approx); diff != "" {
		t.Error(diff)
	}
}

func TestTurns(t *testing.T) {
	cases := []struct {
		code    string
		heading float64
	}{
		{"", 90},
		{"30 L", 120},
		{"30 R", 60},
		{"300 L", 30},
		{"100 R", 350},
		{"-30 L", 60},
		{"720 H=", 0},
		{"-90 H=", 270},
	}
	for _, c := range cases {
		d, _ := run(c.code)
		if diff := cmp.Diff(c.heading, d.Turtle.Heading, approx); diff != "" {
			t.Errorf("%q: %s", c.code, diff)
		}
	}
}

func TestSquare(t *testing.T) {
	d, _ := run("0 H= 10 F 90 L 10 F 90 L 10 F 90 L 10 F")
	want := []Segment{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 0, Y: 0}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 10, Y: 0}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 10, Y: 10}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 0, Y: 10}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 0, Y: 0}},
	}
	if diff := cmp.Diff(want, d.Path.Segments, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Error(diff)
	}
}

func TestBack(t *testing.T) {
	d, _ := run("0 H= 4 B")
	if diff := cmp.Diff(vec.Vec2{X: -4, Y: 0}, d.Turtle.Pos, approx); diff != "" {
		t.Error(diff)
	}
}

func TestJumps(t *testing.T) {
	d, _ := run("0 H= 5 F 3 N 2 E 5 F 1 S 4 W")
	want := []Segment{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 0, Y: 0}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 5, Y: 0}},
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 7, Y: 3}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 12, Y: 3}},
	}
	if diff := cmp.Diff(want, d.Path.Segments, approx); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(vec.Vec2{X: 8, Y: 2}, d.Turtle.Pos, approx); diff != "" {
		t.Error(diff)
	}
}

func TestPen(t *testing.T) {
	d, _ := run("0 H= PU 5 F PD 5 F PU 5 F 5 F")
	want := []Segment{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 5, Y: 0}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 10, Y: 0}},
	}
	if diff := cmp.Diff(want, d.Path.Segments, approx); diff != "" {
		t.Error(diff)
	}
	if d.Turtle.PenDown {
		t.Error("pen is down")
	}
}

func TestSetters(t *testing.T) {
	d, _ := run("0 H= 10 F 3 X= -4 Y= 1 F")
	want := []Segment{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 0, Y: 0}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 10, Y: 0}},
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 3, Y: -4}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 4, Y: -4}},
	}
	if diff := cmp.Diff(want, d.Path.Segments, approx); diff != "" {
		t.Error(diff)
	}
}

func TestTrace(t *testing.T) {
	d, log := run("TRON 5 NOP TROFF 6")
	line := func(word string, x, y, h float64, stack string) string {
		return fmt.Sprintf("%s %s (%7.1f,%7.1f,%7.1f)  %s",
			word, strings.Repeat(".", 31-len(word)), x, y, h, stack)
	}
	want := []string{
		line("5", 0, 0, 90, "empty stack"),
		line("NOP", 0, 0, 90, "5.0"),
		line("TROFF", 0, 0, 90, "5.0"),
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Error(diff)
	}
	if d.tracing {
		t.Error("tracing still on")
	}
}

func TestTraceNested(t *testing.T) {
	_, log := run(": w NOP ; drop w", WithTrace(true))
	if len(log) != 4 {
		t.Fatalf("got %d log lines, want 4: %q", len(log), log)
	}
	prefixes := []string{": w ...", "drop ...", "w ...", "   NOP ..."}
	for i, p := range prefixes {
		if !strings.HasPrefix(log[i], p) {
			t.Errorf("line %d: %q does not start with %q", i, log[i], p)
		}
	}
	if !strings.HasSuffix(log[2], "stack is 1 under") {
		t.Errorf("line 2: %q", log[2])
	}
	for i, l := range log {
		if n := strings.Index(l, "("); n != traceWidth+3 {
			t.Errorf("line %d: turtle state at column %d", i, n)
		}
	}
}

func TestLogBudget(t *testing.T) {
	rec := &logRecorder{}
	intp := NewInterpreter(WithLogf(rec.logf), WithLogBudget(3))
	intp.Run("a b c d e")
	intp.Run("f")
	want := []string{
		"a?", "b?", "c?",
		"Too many log entries. Logging suspended.",
		"Try ResetLogLimiter() to resume logging.",
	}
	if diff := cmp.Diff(want, rec.lines); diff != "" {
		t.Error(diff)
	}

	intp.ResetLogLimiter()
	intp.Run("g")
	if last := rec.lines[len(rec.lines)-1]; last != "g?" {
		t.Errorf("last log line %q, want %q", last, "g?")
	}
}

func TestSharedLimiter(t *testing.T) {
	rec := &logRecorder{}
	l := NewLogLimiter(2, rec.logf)
	a := NewInterpreter(WithLimiter(l))
	b := NewInterpreter(WithLimiter(l))
	a.Run("x")
	b.Run("y")
	if l.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", l.Remaining())
	}
	a.Run("z")
	if len(rec.lines) != 4 {
		t.Errorf("got %d lines, want 4: %q", len(rec.lines), rec.lines)
	}
}

func TestExamples(t *testing.T) {
	files, err := filepath.Glob("testdata/*.draw")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no example programs found")
	}
	for _, name := range files {
		t.Run(filepath.Base(name), func(t *testing.T) {
			fd, err := os.Open(name)
			if err != nil {
				t.Fatal(err)
			}
			defer fd.Close()

			rec := &logRecorder{}
			intp := NewInterpreter(WithLogf(rec.logf))
			d, err := intp.Execute(fd)
			if err != nil {
				t.Fatal(err)
			}
			if len(rec.lines) > 0 {
				t.Errorf("unexpected log %q", rec.lines)
			}
			if d.Path.IsEmpty() {
				t.Error("nothing was drawn")
			}
			if d.Compiling() {
				t.Error("program ends inside a definition")
			}
		})
	}
}

func FuzzRun(f *testing.F) {
	f.Add("1 2 foo 3 +")
	f.Add(": loop loop ; loop")
	f.Add(": x : ; x")
	f.Add("5 360 ArcL 3 -720 ArcR")
	f.Add("drop drop drop + * -")
	f.Add("TRON 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 Dot")
	f.Fuzz(func(t *testing.T, code string) {
		intp := NewInterpreter(WithLogBudget(10))
		d := intp.Run(code)
		if d.Stack.Depth() > StackCapacity {
			t.Errorf("stack depth %d", d.Stack.Depth())
		}
	})
}
