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

// DefaultMaxCallDepth is the nesting limit for user word calls.
const DefaultMaxCallDepth = 30

// Option configures an Interpreter.
type Option interface{ apply(intp *Interpreter) }

type optionFunc func(intp *Interpreter)

func (f optionFunc) apply(intp *Interpreter) { f(intp) }

// WithLogf sets the function which receives diagnostic and trace lines.
// It is ignored if WithLimiter is also given.
func WithLogf(logf func(format string, args ...any)) Option {
	return optionFunc(func(intp *Interpreter) {
		intp.logf = logf
	})
}

// WithLogBudget sets the number of log lines before logging is suspended.
// It is ignored if WithLimiter is also given.
func WithLogBudget(n int) Option {
	return optionFunc(func(intp *Interpreter) {
		intp.logBudget = n
	})
}

// WithLimiter makes the interpreter log through l.  This allows several
// interpreters to share one log budget.
func WithLimiter(l *LogLimiter) Option {
	return optionFunc(func(intp *Interpreter) {
		intp.log = l
	})
}

// WithMaxCallDepth sets the maximal nesting depth of user word calls.
func WithMaxCallDepth(n int) Option {
	return optionFunc(func(intp *Interpreter) {
		intp.MaxCallDepth = n
	})
}

// WithTrace enables tracing from the start of every run, as if
// each program began with "TRON".
func WithTrace(on bool) Option {
	return optionFunc(func(intp *Interpreter) {
		intp.Trace = on
	})
}
