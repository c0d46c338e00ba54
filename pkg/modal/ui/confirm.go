package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/modalslot/pkg/modal"
)

var confirmKeys = struct {
	Toggle, Yes, No, Submit key.Binding
}{
	Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab", "shift+tab")),
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N")),
	Submit: key.NewBinding(key.WithKeys("enter")),
}

type confirmModel struct {
	props modal.Props[string, bool]
	yes   bool
}

// Confirm asks a yes/no question. The input is the question; the output is
// the answer.
var Confirm modal.View[string, bool] = func(p modal.Props[string, bool]) tea.Model {
	return &confirmModel{props: p, yes: true}
}

func (m *confirmModel) Init() tea.Cmd { return nil }

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, confirmKeys.Toggle):
		m.yes = !m.yes
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.props.Close(true)
	case key.Matches(keyMsg, confirmKeys.No):
		m.props.Close(false)
	case key.Matches(keyMsg, confirmKeys.Submit):
		m.props.Close(m.yes)
	}
	return m, nil
}

func (m *confirmModel) View() string {
	yes, no := Button.Render("Yes"), Button.Render("No")
	if m.yes {
		yes = ButtonFocused.Render("Yes")
	} else {
		no = ButtonDangerFocused.Render("No")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yes, "  ", no)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.props.Input,
		"",
		buttons,
		MutedText.Render("y/n answer  ←/→ select  enter confirm"),
	)
}
