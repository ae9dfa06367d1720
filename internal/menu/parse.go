package menu

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidOption is returned for an unrecognised menu or sub-menu choice.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidCount is returned when the word count is not a positive integer.
	ErrInvalidCount = errors.New("invalid word count")
)

// Command is a top-level menu choice.
type Command rune

const (
	CmdGenerate     Command = 'g'
	CmdPrint        Command = 'p'
	CmdSolution     Command = 's'
	CmdSavePuzzle   Command = 'w'
	CmdSaveSolution Command = 'x'
	CmdQuit         Command = 'q'
)

// Source selects where the words of a new puzzle come from.
type Source rune

const (
	SourceManual Source = 'm'
	SourceFile   Source = 'f'
)

// ParseCommand maps the first character of tok to a Command.
func ParseCommand(tok string) (Command, error) {
	switch c := Command(firstRune(tok)); c {
	case CmdGenerate, CmdPrint, CmdSolution, CmdSavePuzzle, CmdSaveSolution, CmdQuit:
		return c, nil
	default:
		return 0, ErrInvalidOption
	}
}

// ParseSource maps the first character of tok to a Source.
func ParseSource(tok string) (Source, error) {
	switch s := Source(firstRune(tok)); s {
	case SourceManual, SourceFile:
		return s, nil
	default:
		return 0, ErrInvalidOption
	}
}

// MaxWords bounds the word count accepted at the manual input prompt.
const MaxWords = 10000

// ParseCount parses a word count between 1 and MaxWords.
func ParseCount(tok string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil || n <= 0 || n > MaxWords {
		return 0, ErrInvalidCount
	}
	return n, nil
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
