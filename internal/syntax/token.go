// Package syntax implements lexical and syntactic analysis for the tiny
// teaching language: tokens, a scanner, the AST, and the parser.
package syntax

import "fmt"

// Kind represents the type of a lexical token.
type Kind uint

const (
	// Special tokens
	_EOF   Kind = iota // end of input
	_Error             // lexical error

	// Literals
	_Name   // identifier: x, count, factorial
	_Number // decimal literal: 0, 42

	// Operators (ordered by precedence, low to high)
	// Comparison operators
	_Eql // ==
	_Lss // <
	_Gtr // >

	// Additive operators
	_Add // +
	_Sub // -

	// Multiplicative operators
	_Mul // *
	_Div // /

	// Any other operator lexeme (!=, <=, %, ...). Never valid in an expression.
	_Op

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Semi   // ;
	_Assign // =
	_Comma  // ,

	// Keywords
	_Int
	_If
	_While
	_Repeat
	_Until
	_Print

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:   "NAME",
	_Number: "NUMBER",

	_Eql: "==",
	_Lss: "<",
	_Gtr: ">",
	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",
	_Op:  "OP",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Semi:   ";",
	_Assign: "=",
	_Comma:  ",",

	_Int:    "int",
	_If:     "if",
	_While:  "while",
	_Repeat: "repeat",
	_Until:  "until",
	_Print:  "print",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Precedence returns the binding power of a binary operator, or -1 if k is
// not a recognized binary operator.
//
//	0: == < >
//	1: + -
//	2: * /
func (k Kind) Precedence() int {
	switch k {
	case _Eql, _Lss, _Gtr:
		return 0
	case _Add, _Sub:
		return 1
	case _Mul, _Div:
		return 2
	}
	return -1
}

// IsComparison reports whether k is a comparison operator.
func (k Kind) IsComparison() bool {
	return k == _Eql || k == _Lss || k == _Gtr
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= _Int && k <= _Print
}

// IsOperator reports whether k is an operator, recognized or not.
func (k Kind) IsOperator() bool {
	return k >= _Eql && k <= _Op
}

// Class groups kinds into the coarse categories a token source produces.
type Class uint8

const (
	ClassEOF Class = iota
	ClassNumber
	ClassIdentifier
	ClassKeyword
	ClassOperator
	ClassPunct
	ClassInvalid
)

var classNames = [...]string{
	ClassEOF:        "eof",
	ClassNumber:     "number",
	ClassIdentifier: "identifier",
	ClassKeyword:    "keyword",
	ClassOperator:   "operator",
	ClassPunct:      "punctuation",
	ClassInvalid:    "invalid",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", c)
}

// Class returns the category of k.
func (k Kind) Class() Class {
	switch {
	case k == _EOF:
		return ClassEOF
	case k == _Number:
		return ClassNumber
	case k == _Name:
		return ClassIdentifier
	case k.IsKeyword():
		return ClassKeyword
	case k.IsOperator():
		return ClassOperator
	case k >= _Lparen && k <= _Comma:
		return ClassPunct
	}
	return ClassInvalid
}

// Exported kinds for callers that build token streams without the scanner.
const (
	EOF     Kind = _EOF
	Illegal Kind = _Error
	Ident   Kind = _Name
	Number  Kind = _Number
	Eql     Kind = _Eql
	Lss     Kind = _Lss
	Gtr     Kind = _Gtr
	Add     Kind = _Add
	Sub     Kind = _Sub
	Mul     Kind = _Mul
	Div     Kind = _Div
	Op      Kind = _Op
	Lparen  Kind = _Lparen
	Rparen  Kind = _Rparen
	Lbrace  Kind = _Lbrace
	Rbrace  Kind = _Rbrace
	Semi    Kind = _Semi
	Assign  Kind = _Assign
	Comma   Kind = _Comma
	KwInt   Kind = _Int
	KwIf    Kind = _If
	KwWhile Kind = _While
	KwRep   Kind = _Repeat
	KwUntil Kind = _Until
	KwPrint Kind = _Print
)

// keywords maps keyword strings to their kind.
// Function names such as factorial are NOT keywords; they are scanned as
// _Name and resolved through the parser's Registry.
var keywords = map[string]Kind{
	"int":    _Int,
	"if":     _If,
	"while":  _While,
	"repeat": _Repeat,
	"until":  _Until,
	"print":  _Print,
}

// LookupKeyword returns the kind for the given identifier string:
// the keyword kind if ident is a keyword, _Name otherwise.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return _Name
}

// Token is a single lexical token. Tokens are values; the parser copies
// them into the nodes they anchor.
type Token struct {
	Kind Kind
	Lit  string // source text; "EOF" for end of input
	Pos  Pos
}

// Line returns the 1-based line the token starts on.
func (t Token) Line() uint32 {
	return t.Pos.Line()
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Lit)
}

// TokenSource supplies tokens on demand. After the end of input, Next keeps
// returning an EOF token.
type TokenSource interface {
	Next() Token
}

// Tokens is a TokenSource over a fixed token slice. A missing trailing EOF
// token is synthesized.
type Tokens struct {
	toks []Token
	i    int
}

// NewTokens returns a TokenSource that yields toks in order.
func NewTokens(toks ...Token) *Tokens {
	return &Tokens{toks: toks}
}

// Next implements TokenSource.
func (s *Tokens) Next() Token {
	if s.i < len(s.toks) {
		t := s.toks[s.i]
		s.i++
		return t
	}
	eof := Token{Kind: _EOF, Lit: "EOF"}
	if n := len(s.toks); n > 0 {
		eof.Pos = s.toks[n-1].Pos
	}
	return eof
}
