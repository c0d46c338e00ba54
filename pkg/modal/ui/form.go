package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/marcus/modalslot/pkg/modal"
)

// formQuit is huh's default abort binding.
var formQuit = huh.NewDefaultKeyMap().Quit

type formModel struct {
	props modal.Props[*huh.Form, *huh.Form]
	form  *huh.Form
}

// Form runs a huh form inside the modal. A completed form closes the modal
// with the form itself so the opener can read the bound values.
//
// An aborted form asks the host to cancel. When the modal cannot be
// cancelled the abort key is swallowed and the form keeps running; a form
// aborted through a custom key map closes the modal with the form in
// huh.StateAborted instead of leaving an empty dialog behind.
var Form modal.View[*huh.Form, *huh.Form] = func(p modal.Props[*huh.Form, *huh.Form]) tea.Model {
	form := p.Input
	form.SubmitCmd = nil
	form.CancelCmd = nil
	if p.Cancelable {
		form.CancelCmd = Cancel
	}
	return &formModel{props: p, form: form}
}

func (m *formModel) Init() tea.Cmd { return m.form.Init() }

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.props.Cancelable && key.Matches(keyMsg, formQuit) {
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.props.Close(m.form)
		return m, nil
	case huh.StateAborted:
		if !m.props.Cancelable {
			m.props.Close(m.form)
			return m, nil
		}
	}
	return m, cmd
}

func (m *formModel) View() string {
	return m.form.View()
}
