package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/tinyc/internal/report"
	"github.com/you-not-fish/tinyc/internal/syntax"
)

// TestE2E runs every .tiny file in testdata/ through the scanner, parser and
// diagnostic renderer in-process and compares the result with its .golden
// file. The golden file records the exit status the CLI would use, the tree
// written to stdout and the diagnostics written to stderr.
func TestE2E(t *testing.T) {
	for _, testFile := range testFiles(t) {
		name := strings.TrimSuffix(filepath.Base(testFile), ".tiny")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(testFile)
			if err != nil {
				t.Fatal(err)
			}

			prog, diags := syntax.ParseProgram(syntax.NewScanner(testFile, bytes.NewReader(src), nil))

			var stdout, stderr bytes.Buffer
			code := 0
			if len(diags) > 0 {
				code = 1
			} else if err := syntax.Fprint(&stdout, prog); err != nil {
				t.Fatal(err)
			}
			if err := report.Fprint(&stderr, src, diags, false); err != nil {
				t.Fatal(err)
			}

			compareGolden(t, testFile, transcript(code, stdout.String(), stderr.String()))
		})
	}
}

// TestCLI builds the tinyc binary and checks that `tinyc parse` produces the
// same transcripts.
func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go not found, skipping CLI tests")
	}

	bin := filepath.Join(t.TempDir(), "tinyc")
	build := exec.Command("go", "build", "-o", bin, "../../cmd/tinyc")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build failed:\n%s\n%v", out, err)
	}

	home := t.TempDir()
	for _, testFile := range testFiles(t) {
		name := strings.TrimSuffix(filepath.Base(testFile), ".tiny")
		t.Run(name, func(t *testing.T) {
			cmd := exec.Command(bin, "parse", "--no-color", testFile)
			cmd.Env = append(os.Environ(), "HOME="+home, "TINYC_CONFIG=")
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			code := 0
			if err := cmd.Run(); err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("running tinyc: %v", err)
				}
				code = exitErr.ExitCode()
			}

			compareGolden(t, testFile, transcript(code, stdout.String(), stderr.String()))
		})
	}
}

func testFiles(t *testing.T) []string {
	t.Helper()
	files, err := filepath.Glob("testdata/*.tiny")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no .tiny test files found in testdata/")
	}
	return files
}

func transcript(code int, stdout, stderr string) string {
	return fmt.Sprintf("exit %d\n-- stdout --\n%s-- stderr --\n%s", code, stdout, stderr)
}

func compareGolden(t *testing.T, testFile, got string) {
	t.Helper()
	goldenFile := strings.TrimSuffix(testFile, ".tiny") + ".golden"

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
			t.Fatal(err)
		}
		return
	}

	want, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	if got != string(want) {
		t.Errorf("output mismatch for %s\ngot:\n%s\nwant:\n%s", testFile, got, want)
	}
}
