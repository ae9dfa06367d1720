package menu

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// tokenizer turns line oriented input into a queue of whitespace separated
// tokens, so answers to several prompts may be typed on one line. Quoted
// tokens keep their spaces. Lines may be of any length.
type tokenizer struct {
	r       *bufio.Reader
	pending []string
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r)}
}

// Next returns the next token, reading more lines as needed. It returns
// io.EOF once the input is exhausted.
func (t *tokenizer) Next() (string, error) {
	for len(t.pending) == 0 {
		line, err := t.r.ReadString('\n')
		if line == "" && err != nil {
			return "", err
		}
		t.pending = splitLine(strings.TrimRight(line, "\r\n"))
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

// splitLine breaks line on whitespace outside quotes. Shell operators such
// as | or ; are ordinary characters. Unbalanced quotes fall back to a plain
// split.
func splitLine(line string) []string {
	if !strings.ContainsAny(line, `"'`) {
		return strings.Fields(line)
	}

	var (
		out   []string
		cur   strings.Builder
		inTok bool
		quote rune
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inTok = true
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			if inTok {
				out = append(out, unquote(cur.String()))
				cur.Reset()
				inTok = false
			}
		default:
			inTok = true
			cur.WriteRune(r)
		}
	}
	if quote != 0 {
		return strings.Fields(line)
	}
	if inTok {
		out = append(out, unquote(cur.String()))
	}
	return out
}

// unquote strips shell quoting from a single token. Tokens shellwords
// would split further or cut at an operator are returned unchanged.
func unquote(tok string) string {
	if !strings.ContainsAny(tok, `"'`) {
		return tok
	}
	p := shellwords.NewParser()
	args, err := p.Parse(tok)
	if err != nil || p.Position >= 0 || len(args) != 1 {
		return tok
	}
	return args[0]
}
