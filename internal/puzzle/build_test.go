package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func solutionRows(g *Grid) []string {
	out := make([]string, 0, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		out = append(out, string(g.Row(r)))
	}
	return out
}

func TestBuildEqualLengthWords(t *testing.T) {
	p, err := NewBuilder(Options{}).Build([]string{"CAT", "DOG"})
	require.NoError(t, err)

	require.Equal(t, 2, p.Grid.Rows())
	require.Equal(t, 3, p.Grid.Cols())
	require.True(t, p.Grid.Equal(p.Solution))
	require.Equal(t, []string{"CAT", "DOG"}, solutionRows(p.Solution))
}

func TestBuildPadsShortWords(t *testing.T) {
	p, err := NewBuilder(Options{}).Build([]string{"A", "BB"})
	require.NoError(t, err)

	require.Equal(t, []string{"AX", "BB"}, solutionRows(p.Solution))
	require.Equal(t, 'A', p.Grid.At(0, 0))
	pad := p.Grid.At(0, 1)
	require.True(t, pad >= 'A' && pad <= 'Z', "padding %q is not A-Z", pad)
}

func TestBuildGridInvariants(t *testing.T) {
	words := []string{"GOPHER", "GO", "", "CHANNEL", "ÉTÉ"}
	p, err := NewBuilder(Options{Seed: 7}).Build(words)
	require.NoError(t, err)

	require.Equal(t, len(words), p.Grid.Rows())
	require.Equal(t, 7, p.Grid.Cols())
	require.Equal(t, p.Grid.Rows(), p.Solution.Rows())
	require.Equal(t, p.Grid.Cols(), p.Solution.Cols())

	for i, w := range words {
		letters := []rune(w)
		for j := 0; j < p.Grid.Cols(); j++ {
			if j < len(letters) {
				require.Equal(t, letters[j], p.Grid.At(i, j))
				require.Equal(t, letters[j], p.Solution.At(i, j))
				continue
			}
			require.Equal(t, DefaultFiller, p.Solution.At(i, j))
			c := p.Grid.At(i, j)
			require.True(t, c >= 'A' && c <= 'Z', "cell (%d,%d) = %q", i, j, c)
		}
	}
}

func TestBuildCustomFiller(t *testing.T) {
	p, err := NewBuilder(Options{Filler: '.'}).Build([]string{"AB", "C"})
	require.NoError(t, err)
	require.Equal(t, []string{"AB", "C."}, solutionRows(p.Solution))
}

func TestBuildSeedIsDeterministic(t *testing.T) {
	words := []string{"Z", "LONGERWORD"}
	a, err := NewBuilder(Options{Seed: 42}).Build(words)
	require.NoError(t, err)
	b, err := NewBuilder(Options{Seed: 42}).Build(words)
	require.NoError(t, err)
	require.True(t, a.Grid.Equal(b.Grid))
}

func TestBuildRejectsEmptyList(t *testing.T) {
	_, err := NewBuilder(Options{}).Build(nil)
	require.ErrorIs(t, err, ErrNoWords)
}

func TestBuildCopiesWords(t *testing.T) {
	words := []string{"ONE"}
	p, err := NewBuilder(Options{}).Build(words)
	require.NoError(t, err)
	words[0] = "TWO"
	require.Equal(t, []string{"ONE"}, p.Words)
}

func TestFromRows(t *testing.T) {
	g, ok := FromRows([][]rune{[]rune("AB"), []rune("CD")})
	require.True(t, ok)
	require.Equal(t, "AB\nCD", g.String())

	_, ok = FromRows([][]rune{[]rune("AB"), []rune("C")})
	require.False(t, ok)

	empty, ok := FromRows(nil)
	require.True(t, ok)
	require.Equal(t, 0, empty.Rows())
}
