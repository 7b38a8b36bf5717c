// Package tui is the interactive line editor: a pre-filled text input
// with readline-style history recall and tab path completion.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/imv/internal/editor"
	"github.com/sokinpui/imv/internal/fscomplete"
	"github.com/sokinpui/imv/internal/history"
)

// --- Styles ---
var (
	promptStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")) // Mauve
	candidateStyle = lipgloss.NewStyle().Faint(true)
)

// --- Key bindings ---
type keyMap struct {
	Accept      key.Binding
	Abort       key.Binding
	EndOfInput  key.Binding
	Complete    key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
}

var defaultKeyMap = keyMap{
	Accept:      key.NewBinding(key.WithKeys("enter")),
	Abort:       key.NewBinding(key.WithKeys("ctrl+c")),
	EndOfInput:  key.NewBinding(key.WithKeys("ctrl+d")),
	Complete:    key.NewBinding(key.WithKeys("tab")),
	HistoryPrev: key.NewBinding(key.WithKeys("up", "ctrl+p")),
	HistoryNext: key.NewBinding(key.WithKeys("down", "ctrl+n")),
}

// Editor runs one bubbletea program per Edit call and implements
// editor.LineEditor.
type Editor struct {
	prompt    string
	history   *history.Manager
	completer *fscomplete.Completer
}

// New creates an interactive editor. The history manager supplies the
// entries recalled with the arrow keys; the completer backs the tab key.
func New(prompt string, hist *history.Manager, completer *fscomplete.Completer) *Editor {
	return &Editor{
		prompt:    prompt,
		history:   hist,
		completer: completer,
	}
}

// Edit stages initial into the edit buffer and blocks until the operator
// submits a line or closes the input.
func (e *Editor) Edit(initial string) (string, error) {
	m := newModel(e.prompt, e.history.Entries(), e.completer)
	if err := m.stuff(initial); err != nil {
		return "", err
	}

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("line editor failed: %w", err)
	}

	fm := final.(model)
	if !fm.submitted {
		return "", editor.ErrEndOfInput
	}
	return fm.input.Value(), nil
}

// --- Model ---
type model struct {
	input     textinput.Model
	keys      keyMap
	completer *fscomplete.Completer

	// history recall; histIdx == len(entries) means the pending line.
	entries []string
	histIdx int
	pending string

	candidates []string
	submitted  bool
}

func newModel(prompt string, entries []string, completer *fscomplete.Completer) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.CharLimit = editor.Capacity
	ti.Focus()

	return model{
		input:     ti,
		keys:      defaultKeyMap,
		completer: completer,
		entries:   entries,
		histIdx:   len(entries),
	}
}

// stuff writes the old filename into the edit buffer one rune at a time,
// failing once the buffer capacity is exceeded.
func (m *model) stuff(s string) error {
	var staged strings.Builder
	count := 0
	for _, r := range s {
		if count >= m.input.CharLimit {
			return editor.ErrNameTooLong
		}
		staged.WriteRune(r)
		count++
	}
	m.input.SetValue(staged.String())
	m.input.CursorEnd()
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Accept):
			m.submitted = true
			m.candidates = nil
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Abort):
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.EndOfInput):
			if m.input.Value() == "" {
				return m, tea.Quit
			}
			// Non-empty buffer: ctrl+d stays textinput's delete-forward.

		case key.Matches(keyMsg, m.keys.Complete):
			value, candidates := m.completer.Complete(m.input.Value())
			m.input.SetValue(value)
			m.input.CursorEnd()
			m.candidates = nil
			if len(candidates) > 1 {
				m.candidates = candidates
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.HistoryPrev):
			m.candidates = nil
			if m.histIdx > 0 {
				if m.histIdx == len(m.entries) {
					m.pending = m.input.Value()
				}
				m.histIdx--
				m.input.SetValue(m.entries[m.histIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.HistoryNext):
			m.candidates = nil
			if m.histIdx < len(m.entries) {
				m.histIdx++
				if m.histIdx == len(m.entries) {
					m.input.SetValue(m.pending)
				} else {
					m.input.SetValue(m.entries[m.histIdx])
				}
				m.input.CursorEnd()
			}
			return m, nil
		}
		m.candidates = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	if len(m.candidates) > 0 {
		b.WriteString("\n")
		b.WriteString(candidateStyle.Render(strings.Join(m.candidates, "  ")))
	}
	return b.String()
}
