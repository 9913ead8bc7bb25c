package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 classes of nodes: Expressions and Statements. All nodes
// implement the Node interface; Program is the root and is neither.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos     // position of the anchor token
	Token() Token // token the node was built from
	aNode()       // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	tok Token
}

func (n *node) Pos() Pos     { return n.tok.Pos }
func (n *node) Token() Token { return n.tok }
func (n *node) aNode()       {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// Program is the root of the tree: the top-level statements in source order.
type Program struct {
	node
	Stmts []Stmt
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// NumberLit represents a decimal integer literal.
type NumberLit struct {
	expr
	Value string // literal text
}

// Operation represents an arithmetic binary operation: X Op Y.
// Both operands are always set.
type Operation struct {
	expr
	Op Kind // _Add, _Sub, _Mul or _Div
	X  Expr
	Y  Expr
}

// Comparison represents a comparison: X Op Y.
// Both operands are always set.
type Comparison struct {
	expr
	Op Kind // _Lss, _Gtr or _Eql
	X  Expr
	Y  Expr
}

// CallExpr represents a function call: Fun(Args...).
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}

// ----------------------------------------------------------------------------
// Statements

// VarDecl represents a declaration: int Name;
type VarDecl struct {
	stmt
	Name *Name
}

// AssignStmt represents an assignment: Name = Value;
type AssignStmt struct {
	stmt
	Name  *Name
	Value Expr
}

// BlockStmt represents a block: { Stmts... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos // position of closing brace
}

// IfStmt represents: if (Cond) Body
type IfStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

// WhileStmt represents: while (Cond) Body
type WhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

// RepeatStmt represents: repeat Body until (Cond);
// Cond is evaluated after each execution of Body.
type RepeatStmt struct {
	stmt
	Body Stmt
	Cond Expr
}

// PrintStmt represents: print X;
type PrintStmt struct {
	stmt
	X Expr
}
