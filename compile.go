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

// Definitions have the form ": name body... ;".  Between ":" and ";" the
// words of the body are collected instead of being executed.  A
// definition containing unknown words or a nested ":" is discarded when
// the ";" is reached; compilation always continues up to the ";".

func (d *Drawing) beginDefinition() {
	d.compiling = true
	d.pendingName = ""
	d.pendingBody = nil
	d.pendingOK = true
}

// endDefinition stores the pending definition, unless it is invalid,
// and leaves compile mode.  Outside of a definition, ";" has no effect.
func (d *Drawing) endDefinition() {
	if d.compiling && d.pendingOK && d.pendingName != "" {
		d.words[d.pendingName] = d.pendingBody
	}
	d.compiling = false
	d.pendingName = ""
	d.pendingBody = nil
	d.pendingOK = false
}

// compile handles one word in compile mode.
func (d *Drawing) compile(t token) {
	switch {
	case t.op == opSemicolon:
		d.endDefinition()
	case d.pendingName == "":
		d.pendingName = t.text
		if d.tracing {
			d.trace(": "+t.text, 0)
		}
	case t.op == opColon:
		d.log.Printf(msgNested)
		d.pendingOK = false
	case t.op != 0,
		t.text == d.pendingName,
		d.IsDefined(t.text),
		t.isNum:
		d.pendingBody = append(d.pendingBody, t)
	default:
		d.log.Printf(msgUnknown, t.text)
		d.pendingOK = false
	}
}
