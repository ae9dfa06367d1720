package puzzle

import "strings"

// Grid is an immutable rectangular matrix of runes backed by a single
// row-major buffer.
type Grid struct {
	rows  int
	cols  int
	cells []rune
}

func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]rune, rows*cols),
	}
}

// FromRows copies equally sized rows into a new Grid. It returns false when
// the rows are ragged.
func FromRows(rows [][]rune) (*Grid, bool) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g := newGrid(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, false
		}
		copy(g.cells[i*cols:], row)
	}
	return g, true
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell at row r, column c. It panics when out of range.
func (g *Grid) At(r, c int) rune {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic("puzzle: cell index out of range")
	}
	return g.cells[r*g.cols+c]
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []rune {
	out := make([]rune, g.cols)
	copy(out, g.cells[r*g.cols:(r+1)*g.cols])
	return out
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders rows joined by newlines, without separators.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(g.cells[r*g.cols : (r+1)*g.cols]))
	}
	return b.String()
}

func (g *Grid) set(r, c int, v rune) {
	g.cells[r*g.cols+c] = v
}
