package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner turns source text into tokens. It implements TokenSource.
type Scanner struct {
	*source

	tok    Kind
	lit    string
	tokPos Pos

	litBuf strings.Builder
}

// NewScanner returns a Scanner over src. errh receives lexical errors and
// may be nil. A character that starts no token is still returned, as an
// _Error token, so the parser can report it in context.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: newSource(filename, src, errh)}
}

// Next scans and returns the next token. At the end of input it keeps
// returning an EOF token whose literal is "EOF".
func (s *Scanner) Next() Token {
	s.scan()
	return Token{Kind: s.tok, Lit: s.lit, Pos: s.tokPos}
}

// Kind, Literal and Pos describe the most recently scanned token.
func (s *Scanner) Kind() Kind      { return s.tok }
func (s *Scanner) Literal() string { return s.lit }
func (s *Scanner) Pos() Pos        { return s.tokPos }

// singles maps each character that is a token on its own to its kind.
// Characters outside the language (%, !, &, |) scan as _Op.
var singles = map[rune]Kind{
	'+': _Add,
	'-': _Sub,
	'*': _Mul,
	'/': _Div,
	'<': _Lss,
	'>': _Gtr,
	'=': _Assign,
	'(': _Lparen,
	')': _Rparen,
	'{': _Lbrace,
	'}': _Rbrace,
	';': _Semi,
	',': _Comma,
	'%': _Op,
	'!': _Op,
	'&': _Op,
	'|': _Op,
}

// doubles maps two-character operators to their kind. Only == belongs to
// the language.
var doubles = map[[2]rune]Kind{
	{'=', '='}: _Eql,
	{'!', '='}: _Op,
	{'<', '='}: _Op,
	{'>', '='}: _Op,
	{'&', '&'}: _Op,
	{'|', '|'}: _Op,
}

func (s *Scanner) scan() {
	for {
		for isWhitespace(s.ch) {
			s.nextch()
		}
		if s.ch != '/' || s.peek() != '/' {
			break
		}
		s.skipLineComment()
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok, s.lit = _EOF, "EOF"
	case isLetter(s.ch):
		s.scanIdent()
	case isDigit(s.ch):
		s.scanNumber()
	default:
		s.scanOperator()
	}
}

func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a decimal literal. Letters glued to the digits (12ab) are
// reported but not consumed.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	if isLetter(s.ch) {
		s.error(fmt.Sprintf("invalid character %q in number literal", s.ch))
	}
	s.lit = s.litBuf.String()
	s.tok = _Number
}

func (s *Scanner) scanOperator() {
	first := s.ch
	if k, ok := doubles[[2]rune{first, s.peek()}]; ok {
		second := s.peek()
		s.nextch()
		s.nextch()
		s.tok, s.lit = k, string([]rune{first, second})
		return
	}

	k, ok := singles[first]
	if !ok {
		s.error(fmt.Sprintf("unexpected character %q", first))
		k = _Error
	}
	s.nextch()
	s.tok, s.lit = k, string(first)
}

func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// ScanAll scans src to the end and returns every token including the final
// EOF token.
func ScanAll(filename string, src io.Reader, errh func(line, col uint32, msg string)) []Token {
	s := NewScanner(filename, src, errh)
	var toks []Token
	for {
		t := s.Next()
		toks = append(toks, t)
		if t.Kind == _EOF {
			return toks
		}
	}
}
