package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/modalslot/pkg/modal"
)

type formResult struct {
	closed    []*huh.Form
	cancelled int
}

func newNameForm(name *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Key("name").Value(name),
	))
}

// openForm opens form under policy and mounts it in a fresh host.
func openForm(t *testing.T, form *huh.Form, policy modal.CancelPolicy) (*modal.Controller, *Host, *formResult) {
	t.Helper()
	ctrl, _, h := newTestHost(t)
	res := &formResult{}
	data := modal.Data[*huh.Form, *huh.Form]{
		Input:   form,
		Cancel:  policy,
		OnClose: func(f *huh.Form) { res.closed = append(res.closed, f) },
	}
	if policy != modal.CancelBlocked {
		data.OnCancel = func() { res.cancelled++ }
	}
	if err := modal.Open(ctrl, Form, data); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	h.Update(struct{}{})
	if h.Mounted() == nil {
		t.Fatal("form was not mounted")
	}
	return ctrl, h, res
}

// send feeds msg to the host and then feeds back the host messages the
// resulting command produces.
func send(h *Host, msg tea.Msg) {
	_, cmd := h.Update(msg)
	for _, m := range hostMsgs(cmd) {
		h.Update(m)
	}
}

func hostMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, hostMsgs(c)...)
		}
		return out
	case CancelMsg, CloseMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

func typeText(h *Host, s string) {
	for _, r := range s {
		h.Update(keyRune(r))
	}
}

// submit finishes the form's only group, as huh does after enter on the
// last field, then lets the view observe the new state.
func submit(h *Host, form *huh.Form) {
	form.NextGroup()
	h.Update(struct{}{})
}

func TestFormCompletedClosesWithForm(t *testing.T) {
	var name string
	form := newNameForm(&name)
	ctrl, h, res := openForm(t, form, modal.CancelDefault)

	typeText(h, "bob")
	submit(h, form)

	if ctrl.IsOpen() {
		t.Fatal("slot should be empty after the form completes")
	}
	if len(res.closed) != 1 || res.closed[0] != form {
		t.Fatalf("OnClose received %v, want the opened form once", res.closed)
	}
	if name != "bob" {
		t.Errorf("bound value = %q, want %q", name, "bob")
	}
	if res.cancelled != 0 {
		t.Errorf("OnCancel called %d times, want 0", res.cancelled)
	}
}

func TestFormAbortCancels(t *testing.T) {
	var name string
	ctrl, h, res := openForm(t, newNameForm(&name), modal.CancelDefault)

	send(h, tea.KeyMsg{Type: tea.KeyCtrlC})

	if ctrl.IsOpen() {
		t.Fatal("aborting a cancelable form should clear the slot")
	}
	if res.cancelled != 1 || len(res.closed) != 0 {
		t.Errorf("cancelled = %d, closed = %d; want 1, 0", res.cancelled, len(res.closed))
	}
}

func TestFormAbortIgnoredWhenBlocked(t *testing.T) {
	var name string
	form := newNameForm(&name)
	ctrl, h, res := openForm(t, form, modal.CancelBlocked)

	send(h, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !ctrl.IsOpen() {
		t.Fatal("a blocked form must stay open after the abort key")
	}
	if form.State != huh.StateNormal {
		t.Errorf("form state = %v, want StateNormal", form.State)
	}
	if out := ansi.Strip(h.View()); !strings.Contains(out, "Name") {
		t.Errorf("form should still render after the abort key:\n%s", out)
	}

	typeText(h, "bob")
	submit(h, form)

	if ctrl.IsOpen() {
		t.Fatal("slot should be empty after the form completes")
	}
	if len(res.closed) != 1 || name != "bob" {
		t.Errorf("closed = %d, name = %q; want 1, %q", len(res.closed), name, "bob")
	}
}

func TestFormCustomAbortWhenBlockedCloses(t *testing.T) {
	var name string
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+q"))
	form := newNameForm(&name).WithKeyMap(km)
	ctrl, h, res := openForm(t, form, modal.CancelBlocked)

	send(h, tea.KeyMsg{Type: tea.KeyCtrlQ})

	if ctrl.IsOpen() {
		t.Fatal("an aborted blocked form should close rather than leave an empty dialog")
	}
	if len(res.closed) != 1 || res.closed[0].State != huh.StateAborted {
		t.Fatalf("OnClose should receive the aborted form, got %v", res.closed)
	}
}
