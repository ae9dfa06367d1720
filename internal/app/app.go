package app

import (
	"fmt"
	"sync"

	"wordsearch/internal/puzzle"
)

// Options configures the session controller.
type Options struct {
	// Filler marks non-word cells of the solution grid. Zero means 'X'.
	Filler rune
	// Seed fixes the padding letter stream. Zero seeds randomly.
	Seed uint64
}

// App is the session the menu, TUI and CLI drive. It owns the current
// puzzle; the puzzle and its solution are always replaced together.
type App struct {
	builder *puzzle.Builder

	mu      sync.RWMutex
	current *puzzle.Puzzle
}

// New constructs an empty session.
func New(opts Options) *App {
	return &App{
		builder: puzzle.NewBuilder(puzzle.Options{
			Filler: opts.Filler,
			Seed:   opts.Seed,
		}),
	}
}

// Generated reports whether a puzzle has been built in this session.
func (a *App) Generated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current != nil
}

// Current returns the latest puzzle or ErrNotGenerated.
func (a *App) Current() (*puzzle.Puzzle, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return nil, ErrNotGenerated
	}
	return a.current, nil
}

// Grid returns the requested grid of the current puzzle.
func (a *App) Grid(kind Kind) (*puzzle.Grid, error) {
	p, err := a.Current()
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindPuzzle:
		return p.Grid, nil
	case KindSolution:
		return p.Solution, nil
	default:
		return nil, fmt.Errorf("unknown grid kind %d", kind)
	}
}
