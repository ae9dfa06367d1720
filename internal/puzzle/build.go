package puzzle

import (
	"errors"
	"math/rand/v2"
	"unicode/utf8"
)

// DefaultFiller marks solution cells that do not belong to a word.
const DefaultFiller = 'X'

// ErrNoWords is returned when a build is requested for an empty word list.
var ErrNoWords = errors.New("no words to place")

// Puzzle pairs a puzzle grid with its solution. Both grids always share the
// same dimensions and are only ever produced together by Build.
type Puzzle struct {
	Words    []string
	Grid     *Grid
	Solution *Grid
}

// Options configures a Builder.
type Options struct {
	// Filler is written into solution cells past the end of a word.
	// Zero means DefaultFiller.
	Filler rune
	// Seed makes padding letters reproducible. Zero seeds from the runtime.
	Seed uint64
}

// Builder lays out one word per row and pads each row to the longest word.
type Builder struct {
	filler rune
	rng    *rand.Rand
}

// NewBuilder constructs a Builder from opts.
func NewBuilder(opts Options) *Builder {
	filler := opts.Filler
	if filler == 0 {
		filler = DefaultFiller
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Builder{
		filler: filler,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Filler returns the solution padding marker.
func (b *Builder) Filler() rune { return b.filler }

// Build constructs the puzzle and solution grids for words. Words are used
// as given; callers normalise case beforehand.
func (b *Builder) Build(words []string) (*Puzzle, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	maxLen := 0
	for _, w := range words {
		maxLen = max(maxLen, utf8.RuneCountInString(w))
	}

	grid := newGrid(len(words), maxLen)
	solution := newGrid(len(words), maxLen)
	for i, w := range words {
		letters := []rune(w)
		for j := 0; j < maxLen; j++ {
			if j < len(letters) {
				grid.set(i, j, letters[j])
				solution.set(i, j, letters[j])
				continue
			}
			grid.set(i, j, b.randomLetter())
			solution.set(i, j, b.filler)
		}
	}

	return &Puzzle{
		Words:    append([]string(nil), words...),
		Grid:     grid,
		Solution: solution,
	}, nil
}

func (b *Builder) randomLetter() rune {
	return 'A' + rune(b.rng.IntN(26))
}
