// Package showcase is a small bubbletea app that exercises every modal
// flow: plain views, typed output, cancellation, forwarding and forms.
package showcase

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/modalslot/pkg/modal"
	"github.com/marcus/modalslot/pkg/modal/ui"
)

const maxEvents = 6

const welcome = `# modalslot

One modal at a time. Press **enter** to close, **esc** or click outside
to dismiss.`

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.Primary)
	keyStyle    = lipgloss.NewStyle().Bold(true)
	eventStyle  = lipgloss.NewStyle().Foreground(ui.Primary)
)

// Model is the showcase app. It finds its controller through scope.
type Model struct {
	scope  *modal.Scope
	status string
	events []modal.Event
}

// New returns the app bound to scope.
func New(scope *modal.Scope) *Model {
	return &Model{scope: scope, status: "no modal output yet"}
}

// Record keeps the latest controller events for display. Pass it to
// modal.WithObserver.
func (m *Model) Record(ev modal.Event) {
	m.events = append(m.events, ev)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

// Status returns the last result line.
func (m *Model) Status() string { return m.status }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "q" || keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	ctrl, err := m.scope.Controller()
	if err != nil {
		m.status = fmt.Sprintf("%s: %v", m.scope.Path(), err)
		return m, nil
	}

	switch keyMsg.String() {
	case "1":
		err = m.openWelcome(ctrl)
	case "2":
		err = m.openName(ctrl)
	case "3":
		err = m.openColor(ctrl)
	case "4":
		err = m.openProfile(ctrl)
	case "5":
		err = m.openBlocking(ctrl)
	case "d":
		ctrl.SetDefaultCancelable(!ctrl.DefaultCancelable())
		m.status = fmt.Sprintf("default cancelable: %v", ctrl.DefaultCancelable())
	}
	if err != nil {
		m.status = err.Error()
	}
	return m, nil
}

func (m *Model) openWelcome(ctrl *modal.Controller) error {
	return modal.Open(ctrl, ui.Markdown, modal.Data[string, modal.Void]{
		Input:   welcome,
		OnClose: func(modal.Void) { m.status = "<last modal has no output>" },
	})
}

func (m *Model) openName(ctrl *modal.Controller) error {
	return modal.Open(ctrl, ui.Prompt, modal.Data[ui.PromptInput, string]{
		Input:    ui.PromptInput{Title: "What should we call you?", Placeholder: "name"},
		OnClose:  func(name string) { m.status = "<output>: " + name },
		OnCancel: func() { m.status = "<last modal was cancelled>" },
	})
}

// colorChoices ends with an entry that forwards to a free-text prompt.
var colorChoices = []ui.Item{
	{ID: "red", Label: "Red"},
	{ID: "green", Label: "Green"},
	{ID: "blue", Label: "Blue"},
	{ID: "custom", Label: "Something else…"},
}

// ChooseColor picks a color, forwarding to a prompt for a custom one. The
// prompt's answer reaches the same OnClose as a picked color.
var ChooseColor modal.View[modal.Void, string] = func(p modal.Props[modal.Void, string]) tea.Model {
	return ui.Picker(modal.Props[ui.PickerInput, string]{
		Input: ui.PickerInput{Title: "Pick a color", Items: colorChoices},
		Close: func(id string) {
			if id != "custom" {
				p.Close(id)
				return
			}
			err := modal.Forward(p.Forward, ui.Prompt, modal.ForwardData[ui.PromptInput]{
				Input: ui.PromptInput{Title: "Which color?"},
			})
			if err != nil {
				p.Close("")
			}
		},
		Forward: p.Forward,
	})
}

func (m *Model) openColor(ctrl *modal.Controller) error {
	return modal.Open(ctrl, ChooseColor, modal.Data[modal.Void, string]{
		OnClose: func(color string) { m.status = "<output>: " + color },
	})
}

func (m *Model) openProfile(ctrl *modal.Controller) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Key("name").Title("Name"),
		huh.NewSelect[string]().Key("role").Title("Role").
			Options(huh.NewOptions("developer", "operator", "designer")...),
	))
	return modal.Open(ctrl, ui.Form, modal.Data[*huh.Form, *huh.Form]{
		Input: form,
		OnClose: func(f *huh.Form) {
			m.status = fmt.Sprintf("<output>: %s (%s)", f.GetString("name"), f.GetString("role"))
		},
		OnCancel: func() { m.status = "<form abandoned>" },
	})
}

func (m *Model) openBlocking(ctrl *modal.Controller) error {
	return modal.Open(ctrl, ui.Confirm, modal.Data[string, bool]{
		Input:   "This one cannot be dismissed. Continue?",
		Cancel:  modal.CancelBlocked,
		OnClose: func(ok bool) { m.status = fmt.Sprintf("<output>: %v", ok) },
	})
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("modalslot showcase"))
	sb.WriteString("\n\n")

	flows := []struct{ key, desc string }{
		{"1", "markdown, no output"},
		{"2", "prompt with output and cancel handler"},
		{"3", "picker forwarding to a prompt"},
		{"4", "huh form"},
		{"5", "confirm that cannot be dismissed"},
		{"d", "toggle the default cancelable flag"},
		{"q", "quit"},
	}
	for _, f := range flows {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(f.key), f.desc))
	}

	sb.WriteString("\n")
	sb.WriteString(m.status)
	sb.WriteString("\n\n")
	for _, ev := range m.events {
		// Slot changes stand out; discards, blocked cancels and stale calls
		// are muted.
		line := fmt.Sprintf("  %-14s #%d", ev.Action, ev.ID)
		if ev.Action.Changes() {
			sb.WriteString(eventStyle.Render("•" + line[1:]))
		} else {
			sb.WriteString(ui.MutedText.Render(line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
