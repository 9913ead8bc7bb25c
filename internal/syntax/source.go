package syntax

import (
	"io"
	"unicode/utf8"
)

// source reads characters from an in-memory copy of the input. Columns are
// derived from the offset of the current line's first byte.
type source struct {
	filename string
	buf      []byte
	errh     func(line, col uint32, msg string)

	ch        rune   // current character, -1 at end of input
	offs      int    // offset of ch in buf
	next      int    // offset of the character after ch
	line      uint32 // line of ch
	lineStart int    // offset of the first byte of line
}

// newSource reads src and positions the reader on its first character.
// A nil errh drops errors.
func newSource(filename string, src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{filename: filename, errh: errh, line: 1, ch: -1}

	buf, err := io.ReadAll(src)
	if err != nil {
		s.error("error reading source: " + err.Error())
		return s
	}
	s.buf = buf
	s.nextch()
	return s
}

// nextch advances to the next character.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.lineStart = s.next
	}
	s.offs = s.next

	if s.next >= len(s.buf) {
		s.ch = -1
		return
	}

	r, w := rune(s.buf[s.next]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.buf[s.next:])
		if r == utf8.RuneError && w == 1 {
			s.error("invalid UTF-8 encoding")
		}
	}
	s.ch = r
	s.next += w
}

// peek returns the byte after ch as a rune, or -1 at the end of input.
// Only ASCII lookahead is needed.
func (s *source) peek() rune {
	if s.next < len(s.buf) {
		return rune(s.buf[s.next])
	}
	return -1
}

func (s *source) col() uint32 {
	return uint32(s.offs-s.lineStart) + 1
}

func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col())
}

func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col(), msg)
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
