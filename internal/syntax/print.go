package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented, one-node-per-line rendering of the tree rooted
// at node to w. The output depends only on the tree.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.print(node)
	return p.err
}

// String returns the Fprint rendering of node.
func String(node Node) string {
	var b strings.Builder
	_ = Fprint(&b, node)
	return b.String()
}

type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// children prints nodes one level deeper.
func (p *printer) children(nodes ...Node) {
	p.indent++
	for _, n := range nodes {
		p.print(n)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program")
		p.children(stmtNodes(n.Stmts)...)

	case *VarDecl:
		p.printf("VarDecl: %s", n.Name.Value)

	case *AssignStmt:
		p.printf("Assign")
		p.children(n.Name, n.Value)

	case *BlockStmt:
		p.printf("Block")
		p.children(stmtNodes(n.Stmts)...)

	case *IfStmt:
		p.printf("If")
		p.children(n.Cond, n.Body)

	case *WhileStmt:
		p.printf("While")
		p.children(n.Cond, n.Body)

	case *RepeatStmt:
		p.printf("Repeat-Until")
		p.children(n.Body, n.Cond)

	case *PrintStmt:
		p.printf("Print")
		p.children(n.X)

	case *Name:
		p.printf("Identifier: %s", n.Value)

	case *NumberLit:
		p.printf("Number: %s", n.Value)

	case *Operation:
		p.printf("BinaryOp: %s", n.Op)
		p.children(n.X, n.Y)

	case *Comparison:
		p.printf("Comparison: %s", n.Op)
		p.children(n.X, n.Y)

	case *CallExpr:
		p.printf("FunctionCall: %s", n.Fun.Value)
		p.children(exprNodes(n.Args)...)

	default:
		p.printf("<%T>", node)
	}
}

func stmtNodes(list []Stmt) []Node {
	nodes := make([]Node, len(list))
	for i, s := range list {
		nodes[i] = s
	}
	return nodes
}

func exprNodes(list []Expr) []Node {
	nodes := make([]Node, len(list))
	for i, x := range list {
		nodes[i] = x
	}
	return nodes
}
