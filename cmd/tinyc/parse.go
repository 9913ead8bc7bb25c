package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/tinyc/internal/report"
	"github.com/you-not-fish/tinyc/internal/syntax"
)

type parseOptions struct {
	format  string
	partial bool
	watch   bool
	noColor bool
}

func newParseCmd(a *app) *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file and print its syntax tree",
		Long: `Parse a file (or standard input when the file is "-" or omitted) and print
its syntax tree. On a syntax error the diagnostic is written to standard error
and the exit status is 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			if opts.format == "" {
				opts.format = a.cfg.Output.Format
			}
			switch opts.format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", opts.format)
			}

			if opts.watch {
				if name == "" || name == "-" {
					return fmt.Errorf("--watch needs a file argument")
				}
				return a.watch(cmd.Context(), name, opts)
			}
			return a.parseFile(name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().BoolVar(&opts.partial, "partial", false, "print the partial tree when parsing stops at an error")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-parse the file whenever it changes")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled diagnostics")
	return cmd
}

// parseFile parses the named input and writes the result.
func (a *app) parseFile(name string, opts parseOptions) error {
	filename, src, err := a.readInput(name)
	if err != nil {
		return err
	}
	return a.parseSource(filename, src, opts)
}

func (a *app) parseSource(filename string, src []byte, opts parseOptions) error {
	popts, err := a.parserOptions()
	if err != nil {
		return err
	}

	errh := func(line, col uint32, msg string) {
		a.log.Warn("lexical error", "file", filename, "line", line, "col", col, "error", msg)
	}
	prog, diags := syntax.ParseProgram(syntax.NewScanner(filename, bytes.NewReader(src), errh), popts...)

	if err := a.writeResult(src, prog, diags, opts); err != nil {
		return err
	}
	if len(diags) > 0 {
		return errSyntax
	}
	return nil
}

func (a *app) writeResult(src []byte, prog *syntax.Program, diags []*syntax.Diagnostic, opts parseOptions) error {
	tree := prog
	if len(diags) > 0 && !opts.partial {
		tree = nil
	}

	switch opts.format {
	case "json":
		return syntax.EncodeJSON(a.stdout, tree, diags)
	case "yaml":
		return syntax.EncodeYAML(a.stdout, tree, diags)
	}

	if tree != nil {
		if err := syntax.Fprint(a.stdout, tree); err != nil {
			return err
		}
	}
	color := a.cfg.Output.UseColor() && !opts.noColor
	return report.Fprint(a.stderr, src, diags, color)
}
