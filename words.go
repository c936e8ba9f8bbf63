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
	"strconv"
	"strings"
)

// op identifies a built-in word.
type op uint8

// The built-in words.  The zero value is not a valid word.
const (
	opColon op = iota + 1
	opSemicolon
	opAdd
	opSub
	opMul
	opDup
	opDrop
	opSwap
	opOver
	opForward
	opBack
	opLeft
	opRight
	opNorth
	opSouth
	opEast
	opWest
	opArcLeft
	opArcRight
	opDot
	opPenDown
	opPenUp
	opSetHeading
	opSetX
	opSetY
	opTraceOn
	opTraceOff
	opNop

	numOps
)

var opNames = [numOps]string{
	opColon:      ":",
	opSemicolon:  ";",
	opAdd:        "+",
	opSub:        "-",
	opMul:        "*",
	opDup:        "dup",
	opDrop:       "drop",
	opSwap:       "swap",
	opOver:       "over",
	opForward:    "F",
	opBack:       "B",
	opLeft:       "L",
	opRight:      "R",
	opNorth:      "N",
	opSouth:      "S",
	opEast:       "E",
	opWest:       "W",
	opArcLeft:    "ArcL",
	opArcRight:   "ArcR",
	opDot:        "Dot",
	opPenDown:    "PD",
	opPenUp:      "PU",
	opSetHeading: "H=",
	opSetX:       "X=",
	opSetY:       "Y=",
	opTraceOn:    "TRON",
	opTraceOff:   "TROFF",
	opNop:        "NOP",
}

func (o op) String() string {
	if o == 0 || o >= numOps {
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// builtins maps the name of every built-in word to its op.
// The map is never modified after initialization.
var builtins = func() map[string]op {
	m := make(map[string]op, numOps)
	for o := opColon; o < numOps; o++ {
		m[opNames[o]] = o
	}
	return m
}()

// Builtins returns the names of all built-in words.
func Builtins() []string {
	res := make([]string, 0, numOps-1)
	for o := opColon; o < numOps; o++ {
		res = append(res, opNames[o])
	}
	return res
}

// A token is one word of program text, resolved as far as possible
// at scan time.  References to user words are looked up by name when
// executed, so that later redefinitions take effect.
type token struct {
	text  string
	op    op // 0 if text is not a built-in
	num   float64
	isNum bool
}

func resolve(text string) token {
	t := token{text: text}
	if o, ok := builtins[text]; ok {
		t.op = o
		return t
	}
	t.num, t.isNum = parseNumber(text)
	return t
}

// parseNumber parses a decimal floating point literal.
// Hexadecimal literals, infinities and NaN are not numbers in this language.
func parseNumber(s string) (float64, bool) {
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, false
	}
	return x, true
}
