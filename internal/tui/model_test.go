package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wordsearch/internal/app"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newSizedModel(t *testing.T, ctrl Controller) *Model {
	t.Helper()
	m := New(ctrl)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

// send feeds msg to the model. When msg submits a text input, the command
// it produces is run and its result fed back; other commands (cursor blink,
// list paging) are dropped.
func send(m *Model, msg tea.Msg) {
	k, isKey := msg.(tea.KeyMsg)
	submitting := m.mode == modeInput && isKey && k.Type == tea.KeyEnter
	_, cmd := m.Update(msg)
	if cmd == nil || !submitting {
		return
	}
	m.Update(cmd())
}

func selectItem(m *Model, index int) {
	for i := 0; i < index; i++ {
		send(m, key("down"))
	}
	send(m, key("enter"))
}

func TestShowBeforeGenerateReportsError(t *testing.T) {
	m := newSizedModel(t, app.New(app.Options{}))
	selectItem(m, int(actShowSolution))

	if !errors.Is(m.err, app.ErrNotGenerated) {
		t.Fatalf("expected ErrNotGenerated, got %v", m.err)
	}
	if m.mode != modeMenu {
		t.Fatalf("expected to stay on the menu, got mode %d", m.mode)
	}
	if !strings.Contains(m.View(), "please generate a word search first") {
		t.Fatalf("view does not show the error:\n%s", m.View())
	}
}

func TestGenerateAndShowSolution(t *testing.T) {
	ctrl := app.New(app.Options{})
	m := newSizedModel(t, ctrl)

	selectItem(m, int(actGenerateManual))
	if m.mode != modeInput {
		t.Fatalf("expected input mode, got %d", m.mode)
	}
	send(m, key("a bb"))
	send(m, key("enter"))

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if !strings.Contains(m.statusMsg, "2×2") {
		t.Fatalf("unexpected status %q", m.statusMsg)
	}

	selectItem(m, int(actShowSolution)-int(actGenerateManual))
	if m.mode != modeGrid {
		t.Fatalf("expected grid mode, got %d", m.mode)
	}
	view := m.View()
	if !strings.Contains(view, "A X") || !strings.Contains(view, "B B") {
		t.Fatalf("solution missing from view:\n%s", view)
	}

	send(m, key("esc"))
	if m.mode != modeMenu {
		t.Fatalf("expected menu after esc, got %d", m.mode)
	}
}

func TestSaveFromTUI(t *testing.T) {
	ctrl := app.New(app.Options{})
	if _, err := ctrl.Generate(app.GenerateParams{Words: []string{"cat", "dog"}}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	m := newSizedModel(t, ctrl)
	path := filepath.Join(t.TempDir(), "solution.txt")

	selectItem(m, int(actSaveSolution))
	if m.mode != modeInput {
		t.Fatalf("expected input mode, got %d", m.mode)
	}
	send(m, key(path))
	send(m, key("enter"))

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "C A T \nD O G \n" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestInputEscCancels(t *testing.T) {
	ctrl := app.New(app.Options{})
	m := newSizedModel(t, ctrl)

	selectItem(m, int(actGenerateFile))
	send(m, key("whatever.txt"))
	send(m, key("esc"))

	if m.mode != modeMenu {
		t.Fatalf("expected menu mode, got %d", m.mode)
	}
	if ctrl.Generated() {
		t.Fatalf("cancelled input must not generate")
	}
}

func TestGenerateFromMissingFile(t *testing.T) {
	m := newSizedModel(t, app.New(app.Options{}))

	selectItem(m, int(actGenerateFile))
	send(m, key(filepath.Join(t.TempDir(), "missing.txt")))
	send(m, key("enter"))

	if !errors.Is(m.err, app.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", m.err)
	}
}

func TestQuitKey(t *testing.T) {
	m := newSizedModel(t, app.New(app.Options{}))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
