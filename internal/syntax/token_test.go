package syntax

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{_EOF, "EOF"},
		{_Error, "ERROR"},
		{_Name, "NAME"},
		{_Number, "NUMBER"},
		{_Eql, "=="},
		{_Lss, "<"},
		{_Gtr, ">"},
		{_Add, "+"},
		{_Sub, "-"},
		{_Mul, "*"},
		{_Div, "/"},
		{_Op, "OP"},
		{_Lparen, "("},
		{_Rparen, ")"},
		{_Lbrace, "{"},
		{_Rbrace, "}"},
		{_Semi, ";"},
		{_Assign, "="},
		{_Comma, ","},
		{_Int, "int"},
		{_If, "if"},
		{_While, "while"},
		{_Repeat, "repeat"},
		{_Until, "until"},
		{_Print, "print"},
		{kindCount + 3, "kind(28)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKindPrecedence(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{_Eql, 0},
		{_Lss, 0},
		{_Gtr, 0},
		{_Add, 1},
		{_Sub, 1},
		{_Mul, 2},
		{_Div, 2},
		{_Op, -1},
		{_Name, -1},
		{_Assign, -1},
		{_Semi, -1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Precedence(); got != tt.want {
				t.Errorf("%s.Precedence() = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKindClass(t *testing.T) {
	tests := []struct {
		kind Kind
		want Class
	}{
		{_EOF, ClassEOF},
		{_Number, ClassNumber},
		{_Name, ClassIdentifier},
		{_Int, ClassKeyword},
		{_Print, ClassKeyword},
		{_Add, ClassOperator},
		{_Eql, ClassOperator},
		{_Op, ClassOperator},
		{_Lparen, ClassPunct},
		{_Assign, ClassPunct},
		{_Comma, ClassPunct},
		{_Error, ClassInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Class(); got != tt.want {
				t.Errorf("%s.Class() = %s, want %s", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"int", _Int},
		{"if", _If},
		{"while", _While},
		{"repeat", _Repeat},
		{"until", _Until},
		{"print", _Print},
		{"factorial", _Name},
		{"Int", _Name},
		{"else", _Name},
		{"x", _Name},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %s, want %s", tt.ident, got, tt.want)
			}
		})
	}
}

func TestTokensSource(t *testing.T) {
	src := NewTokens(
		Token{Kind: Ident, Lit: "x", Pos: NewPos("", 3, 1)},
		Token{Kind: Semi, Lit: ";", Pos: NewPos("", 3, 2)},
	)

	if got := src.Next(); got.Lit != "x" {
		t.Fatalf("first token = %v, want x", got)
	}
	if got := src.Next(); got.Kind != Semi {
		t.Fatalf("second token = %v, want ;", got)
	}
	for i := 0; i < 2; i++ {
		got := src.Next()
		if got.Kind != EOF || got.Lit != "EOF" {
			t.Fatalf("token after end = %v, want EOF", got)
		}
		if got.Line() != 3 {
			t.Errorf("EOF line = %d, want 3", got.Line())
		}
	}
}
