package syntax

import "testing"

func TestPos(t *testing.T) {
	tests := []struct {
		pos   Pos
		str   string
		valid bool
	}{
		{NewPos("test.tiny", 10, 5), "test.tiny:10:5", true},
		{NewPos("", 10, 5), "10:5", true},
		{NewPos("main.tiny", 1, 1), "main.tiny:1:1", true},
		{NewPos("test.tiny", 0, 1), "test.tiny:0:1", false},
		{Pos{}, "0:0", false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}

	p := NewPos("a.tiny", 42, 13)
	if p.Line() != 42 || p.Col() != 13 || p.Filename() != "a.tiny" {
		t.Errorf("getters = %d, %d, %q", p.Line(), p.Col(), p.Filename())
	}
}

func TestPosCompare(t *testing.T) {
	tests := []struct {
		p, q Pos
		want int
	}{
		{NewPos("", 1, 1), NewPos("", 1, 1), 0},
		{NewPos("", 1, 1), NewPos("", 1, 2), -1},
		{NewPos("", 1, 9), NewPos("", 2, 1), -1},
		{NewPos("", 3, 1), NewPos("", 2, 8), +1},
		{NewPos("", 2, 4), NewPos("", 2, 3), +1},
	}

	for _, tt := range tests {
		if got := tt.p.Compare(tt.q); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.p, tt.q, got, tt.want)
		}
		if got := tt.p.Before(tt.q); got != (tt.want < 0) {
			t.Errorf("%s.Before(%s) = %v", tt.p, tt.q, got)
		}
	}
}
