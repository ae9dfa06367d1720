package gridfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wordsearch/internal/puzzle"
)

func buildSolution(t *testing.T, words ...string) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.NewBuilder(puzzle.Options{Seed: 3}).Build(words)
	require.NoError(t, err)
	return p
}

func TestFormat(t *testing.T) {
	p := buildSolution(t, "A", "BB")

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, p.Solution))
	require.Equal(t, "A X \nB B \n", buf.String())
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	p := buildSolution(t, "GOPHER", "GO", "CHAN")
	dir := t.TempDir()

	for name, g := range map[string]*puzzle.Grid{"puzzle.txt": p.Grid, "solution.txt": p.Solution} {
		path := filepath.Join(dir, name)
		require.NoError(t, Write(path, g))

		got, err := Read(path)
		require.NoError(t, err)
		require.True(t, g.Equal(got), "round trip mismatch for %s:\n%s\nvs\n%s", name, g, got)
	}
}

func TestWriteTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("junk\n", 50)), 0o600))

	p := buildSolution(t, "CAT", "DOG")
	require.NoError(t, Write(path, p.Solution))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "C A T \nD O G \n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(fileMode), info.Mode().Perm())
}

func TestWriteFailures(t *testing.T) {
	p := buildSolution(t, "CAT")
	dir := t.TempDir()

	err := Write(filepath.Join(dir, "missing", "out.txt"), p.Grid)
	require.ErrorIs(t, err, ErrFileWrite)

	err = Write(dir, p.Grid)
	require.ErrorIs(t, err, ErrFileWrite)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "temporary files must be cleaned up")
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("A B \nC \n"))
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Parse(strings.NewReader("AB C \n"))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseSkipsBlankLines(t *testing.T) {
	g, err := Parse(strings.NewReader("A B \n\nC D \n"))
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, "AB\nCD", g.String())
}
