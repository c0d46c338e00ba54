package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/modalslot/pkg/modal"
)

// PromptInput configures Prompt.
type PromptInput struct {
	Title       string
	Placeholder string
	Value       string
	CharLimit   int
	// AllowEmpty lets enter submit an empty value.
	AllowEmpty bool
}

type promptModel struct {
	props modal.Props[PromptInput, string]
	input textinput.Model
}

// Prompt reads one line of text and closes with it on enter.
var Prompt modal.View[PromptInput, string] = func(p modal.Props[PromptInput, string]) tea.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = p.Input.Placeholder
	if p.Input.CharLimit > 0 {
		ti.CharLimit = p.Input.CharLimit
	}
	ti.Width = 40
	ti.SetValue(p.Input.Value)
	ti.Focus()
	return &promptModel{props: p, input: ti}
}

func (m *promptModel) Init() tea.Cmd { return textinput.Blink }

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if m.input.Value() != "" || m.props.Input.AllowEmpty {
			m.props.Close(m.input.Value())
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptModel) View() string {
	parts := []string{}
	if m.props.Input.Title != "" {
		parts = append(parts, Title.Render(m.props.Input.Title), "")
	}
	parts = append(parts, m.input.View(), MutedText.Render("enter submit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
