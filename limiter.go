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

// DefaultLogBudget is the number of log lines a LogLimiter lets through
// before it goes silent.
const DefaultLogBudget = 500

// LogLimiter bounds the total number of diagnostic and trace lines.
//
// A program which is re-run after every edit can produce a cascade of
// messages, for example when a word used by many other words is renamed.
// The limiter passes at most a fixed number of lines to its sink, then
// prints a notice and discards everything until Reset is called.  The
// count is not affected by Interpreter.Run, so one limiter covers a whole
// editing session.
//
// A LogLimiter is not safe for concurrent use.
type LogLimiter struct {
	budget int
	left   int
	logf   func(format string, args ...any)
}

// NewLogLimiter returns a limiter which passes up to budget lines to logf.
// If logf is nil, all output is discarded.
func NewLogLimiter(budget int, logf func(format string, args ...any)) *LogLimiter {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &LogLimiter{
		budget: budget,
		left:   budget,
		logf:   logf,
	}
}

// Printf logs one line, if the budget allows.
func (l *LogLimiter) Printf(format string, args ...any) {
	if l.left > 0 {
		l.logf(format, args...)
		l.left--
	} else if l.left == 0 {
		l.logf("Too many log entries. Logging suspended.")
		l.logf("Try ResetLogLimiter() to resume logging.")
		l.left--
	}
}

// Reset re-arms the limiter with its full budget.
func (l *LogLimiter) Reset() {
	l.left = l.budget
}

// Remaining returns the number of lines which can still be logged.
func (l *LogLimiter) Remaining() int {
	return max(l.left, 0)
}
