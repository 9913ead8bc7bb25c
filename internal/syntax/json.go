package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

// EncodeJSON writes a parse result (tree and diagnostics) to w as JSON.
func EncodeJSON(w io.Writer, prog *Program, diags []*Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document(prog, diags))
}

// EncodeYAML writes a parse result (tree and diagnostics) to w as YAML.
func EncodeYAML(w io.Writer, prog *Program, diags []*Diagnostic) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document(prog, diags)); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func document(prog *Program, diags []*Diagnostic) map[string]interface{} {
	list := make([]interface{}, len(diags))
	for i, d := range diags {
		list[i] = diagnosticJSON(d)
	}
	m := map[string]interface{}{
		"diagnostics": list,
	}
	if prog != nil {
		m["program"] = toJSON(prog)
	}
	return m
}

func diagnosticJSON(d *Diagnostic) map[string]interface{} {
	return map[string]interface{}{
		"kind":    d.Kind.String(),
		"code":    d.Kind.Code(),
		"line":    d.Tok.Pos.Line(),
		"col":     d.Tok.Pos.Col(),
		"token":   d.Tok.Lit,
		"message": d.Message(),
	}
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":  "Program",
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	case *VarDecl:
		return map[string]interface{}{
			"type": "VarDecl",
			"pos":  n.Pos().String(),
			"name": n.Name.Value,
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type":  "Assign",
			"pos":   n.Pos().String(),
			"name":  n.Name.Value,
			"value": toJSON(n.Value),
		}

	case *BlockStmt:
		return map[string]interface{}{
			"type":  "Block",
			"pos":   n.Pos().String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	case *IfStmt:
		return map[string]interface{}{
			"type": "If",
			"pos":  n.Pos().String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *WhileStmt:
		return map[string]interface{}{
			"type": "While",
			"pos":  n.Pos().String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *RepeatStmt:
		return map[string]interface{}{
			"type": "Repeat",
			"pos":  n.Pos().String(),
			"body": toJSON(n.Body),
			"cond": toJSON(n.Cond),
		}

	case *PrintStmt:
		return map[string]interface{}{
			"type":  "Print",
			"pos":   n.Pos().String(),
			"value": toJSON(n.X),
		}

	case *Name:
		return map[string]interface{}{
			"type": "Identifier",
			"pos":  n.Pos().String(),
			"name": n.Value,
		}

	case *NumberLit:
		return map[string]interface{}{
			"type":  "Number",
			"pos":   n.Pos().String(),
			"value": n.Value,
		}

	case *Operation:
		return map[string]interface{}{
			"type": "BinaryOp",
			"pos":  n.Pos().String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *Comparison:
		return map[string]interface{}{
			"type": "Comparison",
			"pos":  n.Pos().String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "FunctionCall",
			"pos":  n.Pos().String(),
			"name": n.Fun.Value,
			"args": mapSlice(n.Args, func(x Expr) interface{} { return toJSON(x) }),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

// mapSlice converts a slice using f, returning a non-nil slice so empty
// lists encode as [] rather than null.
func mapSlice[T any](items []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = f(item)
	}
	return result
}
