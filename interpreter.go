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

// Package draw implements a small stack language for turtle graphics,
// inspired by Forth and Logo.
//
// Programs consist of words separated by white space.  Numbers are pushed
// onto a data stack, built-in words take their arguments from the stack
// and move a turtle, which leaves a trail of lines and circular arcs.
// New words are defined with ": name ... ;".  Errors in programs are
// never fatal: unknown words are logged and skipped.
package draw

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Interpreter runs drawing programs.
//
// Every call to Run starts from scratch: the stack, the user dictionary,
// the turtle and the path are created anew.  Only the log budget carries
// over from one run to the next.
type Interpreter struct {
	// MaxCallDepth limits the nesting of user word calls.  This is what
	// stops recursive definitions like ": loop loop ;".
	MaxCallDepth int

	// Trace enables tracing at the start of every run.
	Trace bool

	log       *LogLimiter
	logf      func(format string, args ...any)
	logBudget int
}

// NewInterpreter returns a new interpreter.
// By default, log output is discarded.
func NewInterpreter(opts ...Option) *Interpreter {
	intp := &Interpreter{
		MaxCallDepth: DefaultMaxCallDepth,
		logBudget:    DefaultLogBudget,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(intp)
		}
	}
	if intp.log == nil {
		intp.log = NewLogLimiter(intp.logBudget, intp.logf)
	}
	return intp
}

// ResetLogLimiter re-arms the log budget.
func (intp *Interpreter) ResetLogLimiter() {
	intp.log.Reset()
}

// Run executes a complete program and returns the result.
func (intp *Interpreter) Run(code string) *Drawing {
	// reading from a strings.Reader cannot fail
	d, _ := intp.Execute(strings.NewReader(code))
	return d
}

// Execute reads a complete program from r and executes it.
// If reading fails, the partial result is returned together with
// the error.
func (intp *Interpreter) Execute(r io.Reader) (*Drawing, error) {
	d := intp.newDrawing()
	s := newScanner(r)
	for {
		text, err := s.scanToken()
		if err == io.EOF {
			break
		} else if err != nil {
			return d, fmt.Errorf("line %d: %w", s.line+1, err)
		}
		d.step(resolve(text))
	}
	return d, nil
}

func (intp *Interpreter) newDrawing() *Drawing {
	d := &Drawing{
		Path:     &Path{},
		words:    make(map[string][]token),
		tracing:  intp.Trace,
		maxDepth: intp.MaxCallDepth,
		log:      intp.log,
	}
	d.Turtle.reset()
	return d
}

// Drawing holds the state of a single program run.
type Drawing struct {
	Stack  Stack
	Turtle Turtle
	Path   *Path

	// words is the user dictionary.
	words map[string][]token

	// compile mode
	compiling   bool
	pendingName string
	pendingBody []token
	pendingOK   bool

	tracing  bool
	maxDepth int
	log      *LogLimiter
}

// IsDefined reports whether name is a user-defined word.
func (d *Drawing) IsDefined(name string) bool {
	_, ok := d.words[name]
	return ok
}

// Words returns the names of all user-defined words, in sorted order.
func (d *Drawing) Words() []string {
	return slices.Sorted(maps.Keys(d.words))
}

// Definition returns the body of a user-defined word.
func (d *Drawing) Definition(name string) ([]string, bool) {
	body, ok := d.words[name]
	if !ok {
		return nil, false
	}
	res := make([]string, len(body))
	for i, t := range body {
		res[i] = t.text
	}
	return res, true
}

// Compiling reports whether the program ended inside a definition.
func (d *Drawing) Compiling() bool {
	return d.compiling
}

// step processes one top-level word of the program.
func (d *Drawing) step(t token) {
	switch {
	case d.compiling:
		d.compile(t)
	case t.op == opColon:
		d.beginDefinition()
	default:
		d.executeWord(t, 0)
	}
}

// executeWord executes a single word.  User words are expanded
// recursively, with depth counting the nesting of user word calls.
func (d *Drawing) executeWord(t token, depth int) {
	if depth >= d.maxDepth {
		d.log.Printf(msgTooDeep, t.text)
		return
	}
	if d.tracing {
		d.trace(t.text, depth)
	}

	if t.op != 0 {
		d.call(t.op)
	} else if body, ok := d.words[t.text]; ok {
		for _, w := range body {
			d.executeWord(w, depth+1)
		}
	} else if t.isNum {
		d.Stack.Push(t.num)
	} else {
		d.log.Printf(msgUnknown, t.text)
	}
}
