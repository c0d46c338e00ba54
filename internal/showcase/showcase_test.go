package showcase

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/modalslot/pkg/modal"
)

func press(m tea.Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func setup(t *testing.T) (*Model, *modal.Controller) {
	t.Helper()
	root := modal.NewScope("root")
	app := New(root.Child("showcase"))
	ctrl := modal.New(modal.WithObserver(app.Record))
	root.Provide(ctrl)
	return app, ctrl
}

func TestNoController(t *testing.T) {
	app := New(modal.NewScope("orphan"))
	press(app, "1")
	want := "orphan: " + modal.ErrNoController.Error()
	if app.Status() != want {
		t.Errorf("status = %q, want %q", app.Status(), want)
	}
}

func TestNameFlow(t *testing.T) {
	app, ctrl := setup(t)

	press(app, "2")
	if !ctrl.IsOpen() {
		t.Fatal("expected the prompt to open")
	}
	if err := ctrl.Close("Ada"); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if app.Status() != "<output>: Ada" {
		t.Errorf("status = %q", app.Status())
	}

	press(app, "2")
	ctrl.Cancel()
	if app.Status() != "<last modal was cancelled>" {
		t.Errorf("status = %q", app.Status())
	}
}

func TestWelcomeFlow(t *testing.T) {
	app, ctrl := setup(t)
	press(app, "1")
	if err := ctrl.Close(nil); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if app.Status() != "<last modal has no output>" {
		t.Errorf("status = %q", app.Status())
	}
}

func TestColorFlowForwardsToPrompt(t *testing.T) {
	app, ctrl := setup(t)
	press(app, "3")

	picker := ctrl.Current().Mount()
	picker.Update(tea.KeyMsg{Type: tea.KeyEnd})
	picker.Update(tea.KeyMsg{Type: tea.KeyEnter})

	st := ctrl.Current()
	if st == nil || !st.Forwarded() {
		t.Fatal("choosing the custom entry should forward to the prompt")
	}

	prompt := st.Mount()
	for _, r := range "teal" {
		prompt.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	prompt.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if app.Status() != "<output>: teal" {
		t.Errorf("status = %q, want the forwarded prompt's output", app.Status())
	}
	if ctrl.IsOpen() {
		t.Error("modal should be closed")
	}
}

func TestColorFlowDirectPick(t *testing.T) {
	app, ctrl := setup(t)
	press(app, "3")
	ctrl.Current().Mount().Update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.Status() != "<output>: red" {
		t.Errorf("status = %q", app.Status())
	}
}

func TestBlockingFlow(t *testing.T) {
	app, ctrl := setup(t)
	press(app, "5")

	ctrl.Cancel()
	if !ctrl.IsOpen() {
		t.Fatal("blocking confirm must ignore Cancel")
	}
	if err := ctrl.Close(false); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if app.Status() != "<output>: false" {
		t.Errorf("status = %q", app.Status())
	}
}

func TestProfileFlowWrongOutput(t *testing.T) {
	app, ctrl := setup(t)
	press(app, "4")

	var ce *modal.ContractError
	if err := ctrl.Close("not a form"); !errors.As(err, &ce) {
		t.Fatalf("Close error = %v, want *ContractError", err)
	}
	ctrl.Cancel()
	if app.Status() != "<form abandoned>" {
		t.Errorf("status = %q", app.Status())
	}
}

func TestToggleDefaultAndEvents(t *testing.T) {
	app, ctrl := setup(t)

	press(app, "d")
	if ctrl.DefaultCancelable() {
		t.Error("d should toggle the default off")
	}

	press(app, "1")
	press(app, "2")
	out := app.View()
	for _, want := range []string{"discard", "open", "default cancelable: false"} {
		if !strings.Contains(out, want) && !strings.Contains(app.Status(), want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "• open") {
		t.Errorf("slot changes should be marked:\n%s", out)
	}
	if strings.Contains(out, "• discard") {
		t.Errorf("a discard does not change the slot and should not be marked:\n%s", out)
	}
}

func TestQuit(t *testing.T) {
	app, _ := setup(t)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestRecordKeepsRecentEvents(t *testing.T) {
	app := New(modal.NewScope("root"))
	for i := 1; i <= maxEvents+3; i++ {
		app.Record(modal.Event{Action: modal.ActionOpen, ID: uint64(i)})
	}
	if len(app.events) != maxEvents {
		t.Fatalf("kept %d events, want %d", len(app.events), maxEvents)
	}
	if app.events[0].ID != 4 {
		t.Errorf("oldest kept event = #%d, want #4", app.events[0].ID)
	}
}
