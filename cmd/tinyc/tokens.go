package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/tinyc/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return a.emitTokens(name)
		},
	}
}

// emitTokens prints one line per token followed by any lexical errors.
func (a *app) emitTokens(name string) error {
	filename, src, err := a.readInput(name)
	if err != nil {
		return err
	}

	var errors []string
	errh := func(line, col uint32, msg string) {
		errors = append(errors, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	w := a.stdout
	fmt.Fprintf(w, "%-20s %-12s %-8s %s\n", "POSITION", "CLASS", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %-8s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 8), strings.Repeat("-", 20))

	for _, tok := range syntax.ScanAll(filename, bytes.NewReader(src), errh) {
		fmt.Fprintf(w, "%-20s %-12s %-8s %s\n", tok.Pos, tok.Kind.Class(), tok.Kind, formatLiteral(tok.Lit))
	}

	if len(errors) > 0 {
		fmt.Fprintln(a.stderr, "Errors:")
		for _, e := range errors {
			fmt.Fprintf(a.stderr, "  %s\n", e)
		}
		return errSyntax
	}
	return nil
}

// formatLiteral quotes a literal for display, escaping control characters.
func formatLiteral(lit string) string {
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
