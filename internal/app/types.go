package app

import (
	"errors"

	"wordsearch/internal/gridfile"
	"wordsearch/internal/puzzle"
	"wordsearch/internal/words"
)

var (
	// ErrNotGenerated is returned when a grid is requested before any build.
	ErrNotGenerated = errors.New("please generate a word search first")
	// ErrEmptyPath is returned when a save is requested without a destination.
	ErrEmptyPath = errors.New("output path must not be empty")

	ErrFileNotFound = words.ErrFileNotFound
	ErrFileWrite    = gridfile.ErrFileWrite
	ErrNoWords      = puzzle.ErrNoWords
)

// Kind selects one of the two grids of a puzzle.
type Kind int

const (
	KindPuzzle Kind = iota
	KindSolution
)

func (k Kind) String() string {
	switch k {
	case KindPuzzle:
		return "puzzle"
	case KindSolution:
		return "solution"
	default:
		return "unknown"
	}
}
