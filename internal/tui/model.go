package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordsearch/internal/app"
	"wordsearch/internal/gridfile"
	"wordsearch/internal/puzzle"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Generate(app.GenerateParams) (app.GenerateResult, error)
	GenerateFromFile(path string) (app.GenerateResult, error)
	Grid(app.Kind) (*puzzle.Grid, error)
	Save(app.SaveParams) (app.SaveResult, error)
}

type mode int

const (
	modeMenu mode = iota
	modeInput
	modeGrid
)

type action int

const (
	actGenerateManual action = iota
	actGenerateFile
	actShowPuzzle
	actShowSolution
	actSavePuzzle
	actSaveSolution
	actQuit
)

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	mode    mode
	list    list.Model
	input   textinput.Model
	pending action

	grid     *puzzle.Grid
	gridKind app.Kind

	statusMsg string
	err       error

	width  int
	height int
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New(menuItems(), delegate, 0, 0)
	lst.Title = "Word search"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	in := textinput.New()
	in.CharLimit = 4096

	return &Model{
		controller: ctrl,
		list:       lst,
		input:      in,
		statusMsg:  "Generate a word search to get started.",
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}
		return m, nil

	case generatedMsg:
		m.err = nil
		m.grid = nil
		m.mode = modeMenu
		m.statusMsg = fmt.Sprintf("Word search generated (%d×%d).", msg.result.Rows, msg.result.Cols)
		return m, nil

	case savedMsg:
		m.err = nil
		m.mode = modeMenu
		m.statusMsg = fmt.Sprintf("Saved %s to %s.", msg.kind, msg.result.Path)
		return m, nil

	case errMsg:
		m.err = msg.err
		m.mode = modeMenu
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeGrid:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc", "enter", "backspace":
				m.mode = modeMenu
			}
			return m, nil
		default:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "enter":
				return m.choose()
			}
		}
	}

	if m.mode == modeMenu {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.mode = modeMenu
		return m, nil
	case "enter":
		value := m.input.Value()
		m.input.Blur()
		m.mode = modeMenu
		return m, m.submit(value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) choose() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(menuItem)
	if !ok {
		return m, nil
	}
	m.err = nil

	switch item.act {
	case actQuit:
		return m, tea.Quit
	case actShowPuzzle, actShowSolution:
		kind := kindFor(item.act)
		g, err := m.controller.Grid(kind)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.grid = g
		m.gridKind = kind
		m.mode = modeGrid
		return m, nil
	case actSavePuzzle, actSaveSolution:
		if _, err := m.controller.Grid(kindFor(item.act)); err != nil {
			m.err = err
			return m, nil
		}
	}

	m.pending = item.act
	m.input.Reset()
	m.input.Placeholder = item.prompt
	m.mode = modeInput
	return m, m.input.Focus()
}

func (m *Model) submit(value string) tea.Cmd {
	switch m.pending {
	case actGenerateManual:
		return generateCmd(m.controller, strings.Fields(value))
	case actGenerateFile:
		return generateFromFileCmd(m.controller, value)
	case actSavePuzzle, actSaveSolution:
		return saveCmd(m.controller, kindFor(m.pending), value)
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else {
		statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
		b.WriteString(statusStyle.Render(m.statusMsg))
	}
	b.WriteByte('\n')

	switch m.mode {
	case modeInput:
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case modeGrid:
		var grid strings.Builder
		_ = gridfile.Format(&grid, m.grid)
		gridStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(strings.ToUpper(m.gridKind.String())))
		b.WriteByte('\n')
		b.WriteString(gridStyle.Render(strings.TrimRight(grid.String(), "\n")))
		b.WriteByte('\n')
	default:
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	help := "Commands: enter select • q quit"
	switch m.mode {
	case modeInput:
		help = "Commands: enter confirm • esc cancel"
	case modeGrid:
		help = "Commands: esc back • q quit"
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// menuItem adapts a menu action to the bubbles list item interface.
type menuItem struct {
	act    action
	title  string
	desc   string
	prompt string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

func menuItems() []list.Item {
	return []list.Item{
		menuItem{act: actGenerateManual, title: "Generate from words", desc: "type the words, separated by spaces", prompt: "cat dog horse"},
		menuItem{act: actGenerateFile, title: "Generate from file", desc: "first line of a text file", prompt: "path/to/words.txt"},
		menuItem{act: actShowPuzzle, title: "Print word search", desc: "words padded with random letters"},
		menuItem{act: actShowSolution, title: "Show solution", desc: "words padded with the filler marker"},
		menuItem{act: actSavePuzzle, title: "Save word search", desc: "write the puzzle to a file", prompt: "puzzle.txt"},
		menuItem{act: actSaveSolution, title: "Save solution", desc: "write the solution to a file", prompt: "solution.txt"},
		menuItem{act: actQuit, title: "Quit", desc: "leave the program"},
	}
}

func kindFor(a action) app.Kind {
	if a == actShowSolution || a == actSaveSolution {
		return app.KindSolution
	}
	return app.KindPuzzle
}

type generatedMsg struct {
	result app.GenerateResult
}

type savedMsg struct {
	kind   app.Kind
	result app.SaveResult
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func generateCmd(ctrl Controller, words []string) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Generate(app.GenerateParams{Words: words})
		if err != nil {
			return errMsg{err}
		}
		return generatedMsg{result: res}
	}
}

func generateFromFileCmd(ctrl Controller, path string) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.GenerateFromFile(strings.TrimSpace(path))
		if err != nil {
			return errMsg{err}
		}
		return generatedMsg{result: res}
	}
}

func saveCmd(ctrl Controller, kind app.Kind, path string) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Save(app.SaveParams{Kind: kind, Path: path})
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{kind: kind, result: res}
	}
}
