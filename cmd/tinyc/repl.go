package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/tinyc/internal/report"
	"github.com/you-not-fish/tinyc/internal/syntax"
)

const (
	promptMain  = "tinyc> "
	promptCont  = "  ...> "
	historyFile = ".tinyc_history"
	replFile    = "<repl>"
)

const replHelp = `Enter statements to see their syntax tree. Input continues on the next
line while it is incomplete (an open block, a missing semicolon).

  :help   show this message
  :quit   leave the REPL`

// lineReader is the part of *liner.State the REPL loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse statements interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl()
		},
	}
}

func (a *app) repl() error {
	fmt.Fprintf(a.stdout, "tinyc %s. Type :help for help, :quit to exit.\n", Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	return a.replLoop(ln, ln.AppendHistory)
}

// replLoop reads inputs from r until end of input or :quit, printing the tree
// or the diagnostics for each.
func (a *app) replLoop(r lineReader, remember func(string)) error {
	probe, err := a.cfg.ParserOptions()
	if err != nil {
		return err
	}
	popts, err := a.parserOptions()
	if err != nil {
		return err
	}

	for {
		src, ok := readByParseProbe(r, promptMain, promptCont, probe)
		if !ok {
			fmt.Fprintln(a.stdout)
			return nil
		}

		input := strings.TrimSpace(src)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ":") {
			switch strings.ToLower(input) {
			case ":quit", ":q":
				return nil
			case ":help":
				fmt.Fprintln(a.stdout, replHelp)
			default:
				fmt.Fprintln(a.stdout, "unknown command. Type :quit to exit.")
			}
			continue
		}

		remember(strings.ReplaceAll(src, "\n", " "))
		a.evalInput(src, popts)
	}
}

// evalInput parses one REPL input and prints the result.
func (a *app) evalInput(src string, opts []syntax.Option) {
	prog, diags := syntax.ParseString(replFile, src, opts...)
	if len(diags) > 0 {
		_ = report.Fprint(a.stderr, []byte(src), diags, a.cfg.Output.UseColor())
		return
	}
	for _, s := range prog.Stmts {
		_ = syntax.Fprint(a.stdout, s)
	}
}

// readByParseProbe reads lines until they form a complete input: one that
// parses, or fails for a reason other than running out of tokens. It
// returns false at end of input.
func readByParseProbe(r lineReader, prompt, cont string, opts []syntax.Option) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = r.Prompt(prompt)
		} else {
			line, err = r.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// aborted prompt: drop what was typed so far
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		_, diags := syntax.ParseString(replFile, src, opts...)
		if syntax.IsIncomplete(diags) {
			continue
		}
		return src, true
	}
}
