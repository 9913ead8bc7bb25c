package syntax

import (
	"log/slog"
	"strings"

	"github.com/you-not-fish/tinyc/internal/logging"
)

// DefaultMaxDepth bounds how deeply statements and expressions may nest.
const DefaultMaxDepth = 256

// Option configures a Parser.
type Option func(*Parser)

// WithRegistry sets the table of callable functions.
func WithRegistry(r *Registry) Option {
	return func(p *Parser) {
		if r != nil {
			p.funcs = r
		}
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.Logger = logging.Logger{L: l.With(slog.String("component", "parser"))}
		}
	}
}

// WithMaxDepth sets the nesting limit; n <= 0 disables it.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser performs syntax analysis over a token stream. A Parser is used for
// a single parse and is not safe for concurrent use.
type Parser struct {
	src TokenSource

	tok  Token // current token (one token of lookahead)
	prev Token // most recently consumed token

	funcs    *Registry
	depth    int
	maxDepth int

	diags []*Diagnostic

	logging.Logger
}

// NewParser creates a Parser reading from src and primes it with the first
// token.
func NewParser(src TokenSource, opts ...Option) *Parser {
	p := &Parser{
		src:      src,
		funcs:    NewRegistry(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.next()
	p.Log(slog.LevelDebug, "parser initialized",
		slog.Int("max_depth", p.maxDepth),
		slog.String("functions", strings.Join(p.funcs.Names(), ",")))
	return p
}

// ParseProgram parses every statement in src.
func ParseProgram(src TokenSource, opts ...Option) (*Program, []*Diagnostic) {
	return NewParser(src, opts...).Parse()
}

// ParseString scans and parses src.
func ParseString(filename, src string, opts ...Option) (*Program, []*Diagnostic) {
	return ParseProgram(NewScanner(filename, strings.NewReader(src), nil), opts...)
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.prev = p.tok
	p.tok = p.src.Next()
}

// got reports whether the current token is k.
// If so, it consumes the token and returns true.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it is k. Otherwise it fails with
// kind, naming the previously consumed token.
func (p *Parser) want(k Kind, kind ErrorKind) error {
	if p.got(k) {
		return nil
	}
	return p.fail(kind, p.context())
}

// context returns the token error messages refer to: the last consumed
// token, or the current one if nothing was consumed yet.
func (p *Parser) context() Token {
	if p.prev.Lit == "" {
		return p.tok
	}
	return p.prev
}

// ----------------------------------------------------------------------------
// Error handling

// fail returns a diagnostic of the given kind about tok.
func (p *Parser) fail(kind ErrorKind, tok Token) error {
	return &Diagnostic{Kind: kind, Tok: tok, At: p.tok}
}

// report records err as the parse's diagnostic.
func (p *Parser) report(err error) {
	d, ok := AsDiagnostic(err)
	if !ok {
		d = &Diagnostic{Kind: UnexpectedToken, Tok: p.tok, At: p.tok}
	}
	p.diags = append(p.diags, d)
	p.Log(slog.LevelDebug, "syntax error",
		slog.String("kind", d.Kind.String()),
		slog.Int("line", int(d.Line())),
		slog.String("message", d.Message()))
}

// enter and leave bracket every recursive production.
func (p *Parser) enter() error {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return p.fail(NestingTooDeep, p.tok)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses statements until the end of input. On the first error it
// stops and returns the statements completed so far together with the
// diagnostic.
func (p *Parser) Parse() (*Program, []*Diagnostic) {
	prog := &Program{}
	prog.tok = p.tok

	for p.tok.Kind != _EOF {
		s, err := p.ParseStatement()
		if err != nil {
			p.report(err)
			break
		}
		prog.Stmts = append(prog.Stmts, s)
		p.Log(slog.LevelDebug, "parsed statement",
			slog.Int("index", len(prog.Stmts)-1),
			slog.String("pos", s.Pos().String()))
	}

	p.Log(slog.LevelDebug, "parse complete",
		slog.Int("statements", len(prog.Stmts)),
		slog.Int("diagnostics", len(p.diags)))
	return prog, p.diags
}

// ----------------------------------------------------------------------------
// Statements

// ParseStatement parses one statement starting at the current token.
func (p *Parser) ParseStatement() (Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.tok.Kind {
	case _Int:
		return p.varDecl()
	case _Name:
		return p.assignStmt()
	case _Lbrace:
		return p.blockStmt()
	case _If:
		return p.ifStmt()
	case _While:
		return p.whileStmt()
	case _Repeat:
		return p.repeatStmt()
	case _Print:
		return p.printStmt()
	case _Rbrace:
		// a closing brace with no block open
		return nil, p.fail(MissingLeftBrace, p.context())
	default:
		return nil, p.fail(UnexpectedToken, p.tok)
	}
}

// name parses the identifier at the current token.
func (p *Parser) name() *Name {
	n := &Name{Value: p.tok.Lit}
	n.tok = p.tok
	p.next()
	return n
}

// varDecl parses: int Name ;
func (p *Parser) varDecl() (Stmt, error) {
	d := &VarDecl{}
	d.tok = p.tok
	p.next() // int

	if p.tok.Kind != _Name {
		return nil, p.fail(MissingIdentifier, p.prev)
	}
	d.Name = p.name()

	if err := p.want(_Semi, MissingSemicolon); err != nil {
		return nil, err
	}
	return d, nil
}

// assignStmt parses: Name = Expression ;
func (p *Parser) assignStmt() (Stmt, error) {
	s := &AssignStmt{}
	s.tok = p.tok
	s.Name = p.name()

	if err := p.want(_Assign, MissingEquals); err != nil {
		return nil, err
	}

	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	s.Value = x

	if err := p.want(_Semi, MissingSemicolon); err != nil {
		return nil, err
	}
	return s, nil
}

// blockStmt parses: { Statement... }
func (p *Parser) blockStmt() (Stmt, error) {
	b := &BlockStmt{}
	b.tok = p.tok
	p.next() // {

	for p.tok.Kind != _Rbrace && p.tok.Kind != _EOF {
		s, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		b.Stmts = append(b.Stmts, s)
	}

	if p.tok.Kind != _Rbrace {
		return nil, p.fail(MissingRightBrace, b.tok)
	}
	b.Rbrace = p.tok.Pos
	p.next()
	return b, nil
}

// condition parses the parenthesized condition following kw.
func (p *Parser) condition(kw Token) (Expr, error) {
	if !p.got(_Lparen) {
		return nil, p.fail(MissingLeftParen, p.prev)
	}
	if p.tok.Kind == _Rparen {
		return nil, p.fail(MissingCondition, kw)
	}

	start := p.tok
	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.got(_Rparen) {
		return nil, p.fail(MissingRightParen, start)
	}
	return x, nil
}

// ifStmt parses: if ( Expression ) Statement
func (p *Parser) ifStmt() (Stmt, error) {
	s := &IfStmt{}
	s.tok = p.tok
	p.next() // if

	cond, err := p.condition(s.tok)
	if err != nil {
		return nil, err
	}
	s.Cond = cond

	body, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	s.Body = body
	return s, nil
}

// whileStmt parses: while ( Expression ) Statement
func (p *Parser) whileStmt() (Stmt, error) {
	s := &WhileStmt{}
	s.tok = p.tok
	p.next() // while

	cond, err := p.condition(s.tok)
	if err != nil {
		return nil, err
	}
	s.Cond = cond

	body, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	s.Body = body
	return s, nil
}

// repeatStmt parses: repeat Statement until ( Expression ) ;
func (p *Parser) repeatStmt() (Stmt, error) {
	s := &RepeatStmt{}
	s.tok = p.tok
	p.next() // repeat

	body, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	s.Body = body

	if p.tok.Kind != _Until {
		return nil, p.fail(UnexpectedToken, p.tok)
	}
	until := p.tok
	p.next()

	cond, err := p.condition(until)
	if err != nil {
		return nil, err
	}
	s.Cond = cond

	if err := p.want(_Semi, MissingSemicolon); err != nil {
		return nil, err
	}
	return s, nil
}

// printStmt parses: print Expression ;
func (p *Parser) printStmt() (Stmt, error) {
	s := &PrintStmt{}
	s.tok = p.tok
	p.next() // print

	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	s.X = x

	if err := p.want(_Semi, MissingSemicolon); err != nil {
		return nil, err
	}
	return s, nil
}

// ----------------------------------------------------------------------------
// Expressions

// ParseExpression parses an expression starting at the current token.
func (p *Parser) ParseExpression() (Expr, error) {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators bind at least as
// tightly as prec (precedence climbing). Right operands are parsed at
// prec+1, so chains of equal precedence fold to the left.
func (p *Parser) binaryExpr(prec int) (Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	x, err := p.primaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		k := p.tok.Kind
		if !k.IsOperator() {
			return x, nil
		}
		oprec := k.Precedence()
		if oprec < 0 {
			return nil, p.fail(InvalidOperator, p.tok)
		}
		if oprec < prec {
			return x, nil
		}

		op := p.tok
		p.next()

		y, err := p.binaryExpr(oprec + 1)
		if err != nil {
			return nil, err
		}

		if k.IsComparison() {
			c := &Comparison{Op: k, X: x, Y: y}
			c.tok = op
			x = c
		} else {
			o := &Operation{Op: k, X: x, Y: y}
			o.tok = op
			x = o
		}
	}
}

// primaryExpr parses a number, an identifier, a call, or a parenthesized
// expression.
func (p *Parser) primaryExpr() (Expr, error) {
	switch p.tok.Kind {
	case _Number:
		n := &NumberLit{Value: p.tok.Lit}
		n.tok = p.tok
		p.next()
		return n, nil

	case _Name:
		n := p.name()
		if p.tok.Kind == _Lparen {
			return p.callExpr(n)
		}
		if _, ok := p.funcs.Arity(n.Value); ok {
			// registered functions are always calls
			return nil, p.fail(FunctionCallNoArguments, n.tok)
		}
		return n, nil

	case _Lparen:
		p.next()
		start := p.tok
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if !p.got(_Rparen) {
			return nil, p.fail(MissingRightParen, start)
		}
		return x, nil
	}

	return nil, p.fail(InvalidExpression, p.context())
}

// callExpr parses the argument list of a call to fun: ( [Expr {, Expr}] )
func (p *Parser) callExpr(fun *Name) (Expr, error) {
	call := &CallExpr{Fun: fun}
	call.tok = fun.tok

	arity, ok := p.funcs.Arity(fun.Value)
	if !ok {
		return nil, p.fail(FunctionUndefined, fun.tok)
	}

	p.next() // (

	if p.tok.Kind == _Rparen {
		if arity > 0 {
			return nil, p.fail(FunctionCallNoArguments, fun.tok)
		}
		p.next()
		return call, nil
	}

	for {
		x, err := p.ParseExpression()
		if err != nil {
			if d, ok := AsDiagnostic(err); ok && d.Kind == InvalidExpression {
				return nil, p.fail(FunctionCallInvalidArgument, fun.tok)
			}
			return nil, err
		}
		call.Args = append(call.Args, x)
		if !p.got(_Comma) {
			break
		}
	}

	if !p.got(_Rparen) {
		return nil, p.fail(MissingRightParen, fun.tok)
	}

	switch {
	case len(call.Args) > arity:
		return nil, p.fail(FunctionCallTooManyArguments, fun.tok)
	case len(call.Args) < arity:
		return nil, p.fail(FunctionCallTooFewArguments, fun.tok)
	}
	return call, nil
}
