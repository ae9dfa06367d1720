// Package menu implements the interactive console loop that drives puzzle
// generation, display and saving.
package menu

import (
	"errors"
	"fmt"
	"io"

	"wordsearch/internal/app"
)

// Controller defines the subset of app.App behaviour the menu needs.
type Controller interface {
	Generate(app.GenerateParams) (app.GenerateResult, error)
	GenerateFromFile(path string) (app.GenerateResult, error)
	Render(io.Writer, app.Kind) error
	Save(app.SaveParams) (app.SaveResult, error)
	Generated() bool
}

// Options configures the console menu.
type Options struct {
	// Color enables coloured notices when out is a terminal.
	Color bool
	// Quiet skips the welcome text.
	Quiet bool
}

// Menu is a single-threaded console loop. The only state it carries
// between iterations lives in the controller.
type Menu struct {
	ctrl Controller
	in   *tokenizer
	out  io.Writer
	p    *printer
	opts Options
}

// New constructs a menu reading commands from in and writing to out.
func New(ctrl Controller, in io.Reader, out io.Writer, opts Options) *Menu {
	return &Menu{
		ctrl: ctrl,
		in:   newTokenizer(in),
		out:  out,
		p:    newPrinter(out, opts.Color),
		opts: opts,
	}
}

// Run is shorthand for New(...).Run().
func Run(ctrl Controller, in io.Reader, out io.Writer, opts Options) error {
	return New(ctrl, in, out, opts).Run()
}

// Run loops until the quit command or the end of input. Errors raised by a
// command are reported on the console and never end the loop; only a
// failure to read input is returned.
func (m *Menu) Run() error {
	if !m.opts.Quiet {
		m.p.raw(intro)
	}
	for {
		m.p.raw(banner)
		fmt.Fprintln(m.out)

		tok, err := m.in.Next()
		if err != nil {
			return endOfInput(err)
		}

		cmd, err := ParseCommand(tok)
		if err != nil {
			m.p.notice("Invalid option. Please try again!", toneErr)
			continue
		}
		if cmd == CmdQuit {
			m.p.notice("Exiting the program.", toneInfo)
			return nil
		}
		if err := m.dispatch(cmd); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// dispatch runs one command. A returned error means the input stream
// failed; command failures are reported and swallowed.
func (m *Menu) dispatch(cmd Command) error {
	var err error
	switch cmd {
	case CmdGenerate:
		err = m.generate()
	case CmdPrint:
		err = m.show(app.KindPuzzle)
	case CmdSolution:
		err = m.show(app.KindSolution)
	case CmdSavePuzzle:
		err = m.save(app.KindPuzzle)
	case CmdSaveSolution:
		err = m.save(app.KindSolution)
	}
	if err == nil {
		return nil
	}
	var ie inputError
	if errors.As(err, &ie) {
		return ie.err
	}
	m.report(err)
	return nil
}

func (m *Menu) generate() error {
	m.p.raw(sourceMenu)
	tok, err := m.next()
	if err != nil {
		return err
	}
	src, err := ParseSource(tok)
	if err != nil {
		m.p.notice("Invalid option. Please try again.", toneErr)
		return nil
	}

	switch src {
	case SourceManual:
		err = m.generateManual()
	case SourceFile:
		err = m.generateFromFile()
	}
	if err != nil {
		return err
	}
	m.p.notice("Word Search Generated!", toneOK)
	return nil
}

func (m *Menu) generateManual() error {
	m.p.line("How many words would you like to enter?", toneInfo)
	tok, err := m.next()
	if err != nil {
		return err
	}
	n, err := ParseCount(tok)
	if err != nil {
		return err
	}

	list := make([]string, 0, min(n, 64))
	for i := 1; i <= n; i++ {
		m.p.line(fmt.Sprintf("Please enter word number %d", i), toneInfo)
		word, err := m.next()
		if err != nil {
			return err
		}
		list = append(list, word)
	}

	_, err = m.ctrl.Generate(app.GenerateParams{Words: list})
	return err
}

func (m *Menu) generateFromFile() error {
	fmt.Fprintln(m.out, rule)
	m.p.line("Enter the file path:", toneInfo)
	path, err := m.next()
	if err != nil {
		return err
	}
	_, err = m.ctrl.GenerateFromFile(path)
	return err
}

func (m *Menu) show(kind app.Kind) error {
	return m.ctrl.Render(m.out, kind)
}

func (m *Menu) save(kind app.Kind) error {
	if !m.ctrl.Generated() {
		return app.ErrNotGenerated
	}

	fmt.Fprintln(m.out, rule)
	m.p.line("Enter the output file path:", toneInfo)
	path, err := m.next()
	if err != nil {
		return err
	}
	if _, err := m.ctrl.Save(app.SaveParams{Kind: kind, Path: path}); err != nil {
		return err
	}
	m.p.notice("File saved successfully!", toneOK)
	return nil
}

// next reads a token, tagging read failures so dispatch can tell them
// apart from command errors.
func (m *Menu) next() (string, error) {
	tok, err := m.in.Next()
	if err != nil {
		return "", inputError{err}
	}
	return tok, nil
}

func (m *Menu) report(err error) {
	switch {
	case errors.Is(err, app.ErrNotGenerated):
		fmt.Fprintln(m.out, rule)
		m.p.line("Please generate a word search first", toneErr)
	case errors.Is(err, app.ErrFileNotFound):
		m.p.notice("File not found!", toneErr)
	case errors.Is(err, app.ErrNoWords):
		m.p.notice("No words to place!", toneErr)
	case errors.Is(err, ErrInvalidCount):
		m.p.notice(fmt.Sprintf("Please enter a number from 1 to %d.", MaxWords), toneErr)
	case errors.Is(err, app.ErrFileWrite), errors.Is(err, app.ErrEmptyPath):
		m.p.notice("Unable to save the file!", toneErr)
	default:
		m.p.notice(fmt.Sprintf("Error: %v", err), toneErr)
	}
}

type inputError struct{ err error }

func (e inputError) Error() string { return e.err.Error() }

func (e inputError) Unwrap() error { return e.err }

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
