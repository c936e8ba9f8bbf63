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

// Diagnostic messages.  Diagnostics never stop a program; the
// offending word is skipped and execution continues.
const (
	// msgUnknown is logged for a word which is neither built in, nor
	// defined, nor a number.
	msgUnknown = "%s?"

	// msgNested is logged for a ":" inside a definition.
	msgNested = ":?"

	// msgTooDeep is logged when a word is called beyond the maximal
	// call depth.  Only the current expansion is abandoned.
	msgTooDeep = "call stack too deep: %s"
)
