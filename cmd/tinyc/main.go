// Package main implements the tinyc command: a front end that tokenizes and
// parses programs and prints their syntax trees.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// errSyntax marks a run whose input was rejected. The diagnostics have
// already been written when it is returned.
var errSyntax = errors.New("syntax errors")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line in args and returns the process exit code:
// 0 on success, 1 when the input has syntax errors, 2 for anything else
// (usage, configuration, I/O).
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errSyntax):
		return 1
	default:
		fmt.Fprintf(stderr, "tinyc: %v\n", err)
		return 2
	}
}
