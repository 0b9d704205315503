// Package pattern reads and writes plaintext Life patterns: one line per
// row, '.' for a dead cell and 'O' for a live one. Blank lines and lines
// starting with '!' are ignored.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"lifeviz/pkg/life"
)

var (
	// ErrMalformed reports a line with characters other than '.' and 'O'.
	ErrMalformed = errors.New("pattern: malformed")
	// ErrTooLarge reports a pattern that does not fit the board.
	ErrTooLarge = errors.New("pattern: larger than board")
)

// Pattern is a parsed plaintext pattern. Rows are padded to the widest row.
type Pattern struct {
	Name  string
	Cells life.Grid
}

// Rows returns the pattern height.
func (p Pattern) Rows() int { return p.Cells.Rows() }

// Cols returns the pattern width.
func (p Pattern) Cols() int { return p.Cells.Cols() }

// Parse reads a plaintext pattern. A "!Name:" comment sets Name.
func Parse(r io.Reader) (Pattern, error) {
	var (
		p     Pattern
		lines []string
		width int
	)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		if line == "" {
			continue
		}
		if i := strings.IndexFunc(line, func(c rune) bool { return c != '.' && c != 'O' }); i >= 0 {
			return Pattern{}, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrMalformed, n, i+1, badRune(line[i:]))
		}
		lines = append(lines, line)
		width = max(width, len(line))
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("pattern: read: %w", err)
	}
	if len(lines) == 0 {
		return Pattern{}, fmt.Errorf("%w: no cell rows", ErrMalformed)
	}
	p.Cells = life.NewGrid(len(lines), width)
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			p.Cells[r][c] = line[c] == 'O'
		}
	}
	return p, nil
}

// Place centers p on an all-dead rows x cols board.
func (p Pattern) Place(rows, cols int) (life.Grid, error) {
	if p.Rows() > rows || p.Cols() > cols {
		return nil, fmt.Errorf("%w: %dx%d pattern on %dx%d board", ErrTooLarge, p.Rows(), p.Cols(), rows, cols)
	}
	g := life.NewGrid(rows, cols)
	top, left := (rows-p.Rows())/2, (cols-p.Cols())/2
	for r, row := range p.Cells {
		copy(g[top+r][left:], row)
	}
	return g, nil
}

// LoadFS parses the named file from fsys and places it on a rows x cols board.
func LoadFS(fsys fs.FS, name string, rows, cols int) (life.Grid, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p.Place(rows, cols)
}

// Load parses the file at path and places it on a rows x cols board.
func Load(path string, rows, cols int) (life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p.Place(rows, cols)
}

// Format writes g in plaintext form, preceded by a name comment when name
// is not empty.
func Format(w io.Writer, name string, g life.Grid) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "!Name: %s\n", name)
	}
	for _, row := range g {
		for _, v := range row {
			if v {
				bw.WriteByte('O')
			} else {
				bw.WriteByte('.')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func badRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
