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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"seehuhn.de/go/draw"
	"seehuhn.de/go/draw/svg"
)

const sessionHelp = `Program lines are added to the program, which is then run from the start.
Session commands:
  :list      show the program
  :undo      remove the last program line
  :clear     remove all program lines
  :words     show the user-defined words
  :resetlog  resume logging after the log budget was used up
  :help      show this help
  :quit      end the session
`

// session is an interactive editing session.  Every change to the program
// text re-runs the whole program, like an editor which redraws on every
// keystroke.
type session struct {
	intp   *draw.Interpreter
	w      io.Writer
	out    string
	svgOpt *svg.Options

	lines []string
	last  *draw.Drawing
}

func newSession(intp *draw.Interpreter, w io.Writer, out string, opt *svg.Options) *session {
	return &session{
		intp:   intp,
		w:      w,
		out:    out,
		svgOpt: opt,
	}
}

// handle processes one line of input.  It returns false once the session
// should end.
func (s *session) handle(line string) bool {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return false
	case ":help", ":?":
		fmt.Fprint(s.w, sessionHelp)
		fmt.Fprintln(s.w, "Built-in words:")
		fmt.Fprintln(s.w, "  "+strings.Join(draw.Builtins(), " "))
	case ":list":
		for i, l := range s.lines {
			fmt.Fprintf(s.w, "%3d  %s\n", i+1, l)
		}
	case ":undo":
		if len(s.lines) > 0 {
			s.lines = s.lines[:len(s.lines)-1]
		}
		s.run()
	case ":clear":
		s.lines = nil
		s.run()
	case ":words":
		if s.last == nil {
			break
		}
		for _, name := range s.last.Words() {
			body, _ := s.last.Definition(name)
			fmt.Fprintf(s.w, ": %s %s ;\n", name, strings.Join(body, " "))
		}
	case ":resetlog":
		s.intp.ResetLogLimiter()
		fmt.Fprintln(s.w, "ready")
	default:
		s.lines = append(s.lines, line)
		s.run()
	}
	return true
}

// run executes the current program and writes the drawing.
func (s *session) run() {
	d := s.intp.Run(strings.Join(s.lines, "\n"))
	s.last = d

	if s.out != "" {
		err := writeSVG(s.out, d.Path, s.svgOpt)
		if err != nil {
			fmt.Fprintf(s.w, "ERROR: %v\n", err)
		}
	}

	t := &d.Turtle
	fmt.Fprintf(s.w, "(%.1f, %.1f, %.1f)  %s\n", t.Pos.X, t.Pos.Y, t.Heading, d.Stack.String())
}

// prompt returns the prompt for the next line.
func (s *session) prompt() string {
	if s.last != nil && s.last.Compiling() {
		return "... "
	}
	return "draw> "
}

// interact reads lines from the terminal until the user quits.
func (s *session) interact(histPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(s.w, "Type :help for help.")
	for {
		line, err := ln.Prompt(s.prompt())
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.w)
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if !s.handle(line) {
			return nil
		}
	}
}
