package app

import (
	"io"
	"strings"

	"wordsearch/internal/gridfile"
)

// Render writes the requested grid to w. Nothing is written when no puzzle
// has been generated yet.
func (a *App) Render(w io.Writer, kind Kind) error {
	g, err := a.Grid(kind)
	if err != nil {
		return err
	}
	return gridfile.Format(w, g)
}

// SaveParams configures Save.
type SaveParams struct {
	Kind Kind
	Path string
}

// SaveResult reports where the grid was stored.
type SaveResult struct {
	Path string
	Rows int
	Cols int
}

// Save writes the requested grid to params.Path, replacing any existing file.
func (a *App) Save(params SaveParams) (SaveResult, error) {
	g, err := a.Grid(params.Kind)
	if err != nil {
		return SaveResult{}, err
	}
	path := strings.TrimSpace(params.Path)
	if path == "" {
		return SaveResult{}, ErrEmptyPath
	}
	if err := gridfile.Write(path, g); err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Path: path, Rows: g.Rows(), Cols: g.Cols()}, nil
}
