package syntax

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceAdvance(t *testing.T) {
	s := newSource("test", strings.NewReader("ab\n\ncd"), nil)

	want := []struct {
		ch        rune
		line, col uint32
	}{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 1, 3},
		{'\n', 2, 1},
		{'c', 3, 1},
		{'d', 3, 2},
		{-1, 3, 3},
		{-1, 3, 3},
	}
	for i, w := range want {
		if s.ch != w.ch || s.line != w.line || s.col() != w.col {
			t.Errorf("step %d: ch=%q at %d:%d, want %q at %d:%d", i, s.ch, s.line, s.col(), w.ch, w.line, w.col)
		}
		s.nextch()
	}
}

func TestSourcePeek(t *testing.T) {
	s := newSource("test", strings.NewReader("<="), nil)
	if s.ch != '<' || s.peek() != '=' {
		t.Errorf("ch=%q peek=%q, want '<' '='", s.ch, s.peek())
	}
	s.nextch()
	if s.peek() != -1 {
		t.Errorf("peek at last char = %q, want -1", s.peek())
	}
}

func TestSourceEmpty(t *testing.T) {
	s := newSource("test", strings.NewReader(""), nil)
	if s.ch != -1 || s.pos().String() != "test:1:1" {
		t.Errorf("empty input: ch=%d pos=%s", s.ch, s.pos())
	}
}

func TestSourceMultibyteColumns(t *testing.T) {
	s := newSource("test", strings.NewReader("é="), nil)
	if s.ch != 'é' {
		t.Fatalf("ch = %q", s.ch)
	}
	s.nextch()
	if s.ch != '=' || s.col() != 3 {
		t.Errorf("after 2-byte rune: ch=%q col=%d, want '=' col 3", s.ch, s.col())
	}
}

func TestSourceInvalidUTF8(t *testing.T) {
	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, msg)
	}
	newSource("test", strings.NewReader("a\xffb"), errh).nextch()

	if len(errs) != 1 || !strings.Contains(errs[0], "UTF-8") {
		t.Errorf("errors = %v, want one UTF-8 error", errs)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestSourceReadError(t *testing.T) {
	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, msg)
	}
	s := newSource("test", failingReader{}, errh)

	if s.ch != -1 {
		t.Errorf("ch = %d, want -1 after read error", s.ch)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "disk on fire") {
		t.Errorf("errors = %v, want read error", errs)
	}
}
