package syntax

import "fmt"

// Pos is a source position. Lines and columns are 1-based; columns count
// bytes. The zero Pos is unknown.
type Pos struct {
	filename string
	line     uint32
	col      uint32
}

// NewPos returns the position line:col in filename.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String formats p as file:line:col, dropping the file when it is empty.
func (p Pos) String() string {
	if p.filename == "" {
		return fmt.Sprintf("%d:%d", p.line, p.col)
	}
	return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
}

// IsValid reports whether p refers to a line.
func (p Pos) IsValid() bool { return p.line > 0 }

func (p Pos) Line() uint32     { return p.line }
func (p Pos) Col() uint32      { return p.col }
func (p Pos) Filename() string { return p.filename }

// Compare orders positions in the same file by line, then column. It
// returns -1, 0 or +1.
func (p Pos) Compare(q Pos) int {
	switch {
	case p.line < q.line:
		return -1
	case p.line > q.line:
		return +1
	case p.col < q.col:
		return -1
	case p.col > q.col:
		return +1
	}
	return 0
}

// Before reports whether p comes strictly before q.
func (p Pos) Before(q Pos) bool { return p.Compare(q) < 0 }
