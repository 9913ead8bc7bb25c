package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/tinyc/internal/config"
	"github.com/you-not-fish/tinyc/internal/logging"
	"github.com/you-not-fish/tinyc/internal/syntax"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg *config.Config
	log *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tinyc",
		Short: "tinyc - parser front end for a small imperative language",
		Long: `tinyc tokenizes and parses programs written in a small teaching language
(int declarations, assignment, if, while, repeat-until, print, and calls to
registered functions such as factorial) and prints the resulting syntax tree.

Commands:
  parse   - parse a file and print its tree or diagnostics
  tokens  - print the token stream of a file
  repl    - parse statements interactively
  version - print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+", ./tinyc.toml or ~/.config/tinyc/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log parser activity at debug level")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json (overrides config)")

	root.AddCommand(
		newParseCmd(a),
		newTokensCmd(a),
		newReplCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.LoadDefault(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	format := cfg.Log.Format
	if a.logFormat != "" {
		format = a.logFormat
	}
	l, err := logging.New(a.stderr, level, format)
	if err != nil {
		return err
	}
	a.log = l.With(slog.String("run", uuid.NewString()))

	if cfg.Path != "" {
		a.log.Debug("config loaded", "path", cfg.Path)
	}
	return nil
}

// parserOptions returns the options for a parser configured by a.cfg.
func (a *app) parserOptions() ([]syntax.Option, error) {
	opts, err := a.cfg.ParserOptions()
	if err != nil {
		return nil, err
	}
	return append(opts, syntax.WithLogger(a.log)), nil
}

// readInput reads the named file, or standard input for "" and "-".
func (a *app) readInput(name string) (string, []byte, error) {
	if name == "" || name == "-" {
		src, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "<stdin>", src, nil
	}
	src, err := os.ReadFile(name)
	if err != nil {
		return "", nil, fmt.Errorf("reading input: %w", err)
	}
	return name, src, nil
}
