// Package words collects and normalises the word list a puzzle is built from.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wordsearch/internal/puzzle"
)

var (
	// ErrFileNotFound is returned when a word-list path does not resolve.
	ErrFileNotFound = errors.New("file not found")
	// ErrNoWords is returned when the input yields no usable word.
	ErrNoWords = puzzle.ErrNoWords
)

// Normalize upper-cases every word and drops blank ones. A token holding
// whitespace is split, so every word is free of spaces.
func Normalize(tokens []string) []string {
	upper := cases.Upper(language.Und)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		for _, w := range strings.Fields(tok) {
			out = append(out, upper.String(w))
		}
	}
	return out
}

// FromFile reads the first line of the file at path and returns its
// whitespace separated words, normalised. Later lines are ignored.
func FromFile(path string) ([]string, error) {
	expanded, err := homedir.Expand(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", path, err)
	}

	f, err := os.Open(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read word list: %w", err)
		}
		return nil, ErrNoWords
	}

	words := Normalize(strings.Fields(sc.Text()))
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}
