// Package gridfile reads and writes grids in the plain text layout shared by
// the console and saved files: one row per line, every cell followed by a
// single space.
package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-homedir"

	"wordsearch/internal/puzzle"
)

var (
	// ErrFileWrite is returned when a grid cannot be written to its destination.
	ErrFileWrite = errors.New("unable to save the file")
	// ErrMalformed is returned by Read for text that is not a rectangular grid.
	ErrMalformed = errors.New("malformed grid file")
)

const fileMode = 0o644

// Format writes g to w.
func Format(w io.Writer, g *puzzle.Grid) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for _, c := range g.Row(r) {
			bw.WriteRune(c)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Write stores g at path. The content goes to a temporary file next to the
// destination which is then renamed over it, so readers never observe a
// partially written grid.
func Write(path string, g *puzzle.Grid) error {
	if err := write(path, g); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}

func write(path string, g *puzzle.Grid) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if err := Format(tmp, g); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	tmpName = ""
	return nil
}

// Read parses a grid previously written by Write. Each line is a row and each
// whitespace separated token is a single cell.
func Read(path string) (*puzzle.Grid, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("grid file %s: %w", path, fs.ErrNotExist)
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a grid from r.
func Parse(r io.Reader) (*puzzle.Grid, error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]rune, 0, len(fields))
		for _, cell := range fields {
			if utf8.RuneCountInString(cell) != 1 {
				return nil, fmt.Errorf("%w: line %d: cell %q is not a single character", ErrMalformed, line, cell)
			}
			c, _ := utf8.DecodeRuneInString(cell)
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	g, ok := puzzle.FromRows(rows)
	if !ok {
		return nil, fmt.Errorf("%w: rows have different lengths", ErrMalformed)
	}
	return g, nil
}
