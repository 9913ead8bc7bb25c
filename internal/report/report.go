// Package report renders parse diagnostics for terminals: the diagnostic
// line, its position, and the offending source line with a caret under the
// context token.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/tinyc/internal/syntax"
)

var (
	colorError  = lipgloss.Color("#EF4444") // Red
	colorAccent = lipgloss.Color("#F59E0B") // Amber
	colorMuted  = lipgloss.Color("#6B7280") // Gray
)

// Printer writes diagnostics to a single writer.
type Printer struct {
	w     io.Writer
	color bool

	header lipgloss.Style
	where  lipgloss.Style
	gutter lipgloss.Style
	caret  lipgloss.Style
}

// New returns a Printer for w. With color false every style is skipped and
// the output is plain text; with color true lipgloss still downgrades to
// plain text when w is not a terminal.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		color:  color,
		header: r.NewStyle().Foreground(colorError).Bold(true),
		where:  r.NewStyle().Foreground(colorMuted),
		gutter: r.NewStyle().Foreground(colorMuted),
		caret:  r.NewStyle().Foreground(colorAccent).Bold(true),
	}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Print writes d followed by an excerpt of src around it. The excerpt is
// omitted when the diagnostic's line is not in src.
func (p *Printer) Print(src []byte, d *syntax.Diagnostic) error {
	var b strings.Builder

	b.WriteString(p.render(p.header, d.Error()))
	b.WriteByte('\n')

	pos := d.Tok.Pos
	if pos.IsValid() {
		b.WriteString(p.render(p.where, " --> "+pos.String()))
		b.WriteByte('\n')
	}

	if line, ok := sourceLine(src, pos.Line()); ok {
		num := fmt.Sprint(pos.Line())
		pad := strings.Repeat(" ", len(num))

		b.WriteString(p.render(p.gutter, " "+num+" | "))
		b.WriteString(line)
		b.WriteByte('\n')

		b.WriteString(p.render(p.gutter, " "+pad+" | "))
		b.WriteString(strings.Repeat(" ", caretOffset(line, pos.Col())))
		b.WriteString(p.render(p.caret, strings.Repeat("^", caretWidth(d.Tok))))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// Fprint writes every diagnostic in diags to w in source order.
func Fprint(w io.Writer, src []byte, diags []*syntax.Diagnostic, color bool) error {
	sorted := append([]*syntax.Diagnostic(nil), diags...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tok.Pos.Before(sorted[j].Tok.Pos)
	})

	p := New(w, color)
	for _, d := range sorted {
		if err := p.Print(src, d); err != nil {
			return err
		}
	}
	return nil
}

// sourceLine returns line n (1-based) of src with tabs flattened to single
// spaces so the caret lines up.
func sourceLine(src []byte, n uint32) (string, bool) {
	if n == 0 {
		return "", false
	}
	lines := strings.Split(string(src), "\n")
	if int(n) > len(lines) {
		return "", false
	}
	line := strings.TrimRight(lines[n-1], "\r")
	return strings.ReplaceAll(line, "\t", " "), true
}

// caretOffset returns the display width of line before byte column col.
func caretOffset(line string, col uint32) int {
	if col <= 1 {
		return 0
	}
	end := int(col - 1)
	if end > len(line) {
		end = len(line)
	}
	return lipgloss.Width(line[:end])
}

func caretWidth(tok syntax.Token) int {
	if tok.Kind == syntax.EOF || len(tok.Lit) == 0 {
		return 1
	}
	return lipgloss.Width(tok.Lit)
}
