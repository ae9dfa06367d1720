package app

import (
	"fmt"

	"wordsearch/internal/puzzle"
	"wordsearch/internal/words"
)

// GenerateParams configures a build from words already in memory.
type GenerateParams struct {
	Words []string
}

// GenerateResult describes the puzzle that replaced the session's grids.
type GenerateResult struct {
	Words []string
	Rows  int
	Cols  int
}

// Generate normalises params.Words and builds a new puzzle from them. The
// session is left untouched when the build fails.
func (a *App) Generate(params GenerateParams) (GenerateResult, error) {
	list := words.Normalize(params.Words)
	return a.build(list)
}

// GenerateFromFile builds a new puzzle from the first line of the word-list
// file at path.
func (a *App) GenerateFromFile(path string) (GenerateResult, error) {
	list, err := words.FromFile(path)
	if err != nil {
		return GenerateResult{}, err
	}
	return a.build(list)
}

func (a *App) build(list []string) (GenerateResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.builder.Build(list)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("build puzzle: %w", err)
	}
	a.current = p
	return resultFor(p), nil
}

func resultFor(p *puzzle.Puzzle) GenerateResult {
	return GenerateResult{
		Words: append([]string(nil), p.Words...),
		Rows:  p.Grid.Rows(),
		Cols:  p.Grid.Cols(),
	}
}
