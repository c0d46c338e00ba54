package modal

import (
	tea "github.com/charmbracelet/bubbletea"
)

type stubModel struct{ name string }

func (m stubModel) Init() tea.Cmd                       { return nil }
func (m stubModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m stubModel) View() string                        { return m.name }

// capture returns a view that records the props it was mounted with.
func capture[I, O any](name string, dst *Props[I, O]) View[I, O] {
	return func(p Props[I, O]) tea.Model {
		*dst = p
		return stubModel{name: name}
	}
}

// mount mounts the current modal and returns its rendered name.
func mount(t interface{ Fatal(...any) }, c *Controller) string {
	st := c.Current()
	if st == nil {
		t.Fatal("expected an open modal")
	}
	return st.Mount().View()
}

type recorder struct {
	events []Event
}

func (r *recorder) observe(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []Action {
	out := make([]Action, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}
