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
	"io"
)

// scanner splits program text into words.
//
// Words are separated by spaces, tabs and line breaks.  A '#' starts a
// comment which extends to the end of the line.  Line breaks may be LF, CR
// or CR+LF.
type scanner struct {
	line int // 0-based
	col  int // 0-based

	r         io.Reader
	buf       []byte
	pos, used int
	crSeen    bool

	peek    byte
	hasPeek bool

	// err is the first error returned by r.Read().
	// Once an error has been returned, all subsequent calls to .refill() will
	// return err.
	err error
}

func newScanner(r io.Reader) *scanner {
	return &scanner{
		r:   r,
		buf: make([]byte, 512),
	}
}

// scanToken returns the next word of the program.
// At the end of input, io.EOF is returned.
func (s *scanner) scanToken() (string, error) {
	err := s.skipWhiteSpace()
	if err != nil {
		return "", err
	}

	var word []byte
	for {
		b, err := s.peekByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
		if !isRegular(b) {
			break
		}
		s.next()
		word = append(word, b)
	}
	return string(word), nil
}

// skipWhiteSpace skips all input (including comments) until a
// non-whitespace character is found.
func (s *scanner) skipWhiteSpace() error {
	for {
		b, err := s.peekByte()
		if err != nil {
			return err
		}
		switch {
		case isSpace(b):
			s.next()
		case b == '#':
			err = s.skipComment()
			if err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// skipComment skips everything from a '#' up to, but not including,
// the end of the line.
func (s *scanner) skipComment() error {
	for {
		b, err := s.peekByte()
		if err != nil {
			return err
		}
		if b == '\n' || b == '\r' {
			return nil
		}
		s.next()
	}
}

func (s *scanner) peekByte() (byte, error) {
	if !s.hasPeek {
		b, err := s.readByte()
		if err != nil {
			return 0, err
		}
		s.peek = b
		s.hasPeek = true
	}
	return s.peek, nil
}

func (s *scanner) next() (byte, error) {
	var b byte
	if s.hasPeek {
		b = s.peek
		s.hasPeek = false
	} else {
		var err error
		b, err = s.readByte()
		if err != nil {
			return 0, err
		}
	}

	if s.crSeen && b == '\n' {
		// ignore LF after CR
	} else if b == '\n' || b == '\r' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	s.crSeen = (b == '\r')

	return b, nil
}

func (s *scanner) readByte() (byte, error) {
	for s.pos >= s.used {
		err := s.refill()
		if err != nil {
			return 0, err
		}
	}

	b := s.buf[s.pos]
	s.pos++

	return b, nil
}

func (s *scanner) refill() error {
	if s.err != nil {
		return s.err
	}
	s.used = copy(s.buf, s.buf[s.pos:s.used])
	s.pos = 0

	n, err := s.r.Read(s.buf[s.used:])
	s.used += n
	if err != nil {
		s.err = err
	}
	if n > 0 {
		err = nil
	}
	return err
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isRegular(b byte) bool {
	return !isSpace(b) && b != '#'
}
