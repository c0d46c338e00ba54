// Package ui renders a modal.Controller inside a bubbletea program and
// provides a set of ready-made views.
package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/modalslot/pkg/modal"
	"github.com/marcus/modalslot/pkg/modal/mouse"
)

const (
	regionBackdrop = "backdrop"
	regionDialog   = "dialog"
)

// CancelMsg asks the host to cancel the open modal. Views use it because
// cancellation is not part of their props.
type CancelMsg struct{}

// Cancel is a tea.Cmd producing CancelMsg.
func Cancel() tea.Msg { return CancelMsg{} }

// CloseMsg asks the host to close the open modal with Output. A nil
// Output closes with the zero value of the view's output type.
type CloseMsg struct {
	Output any
}

// Close returns a tea.Cmd producing CloseMsg.
func Close(output any) tea.Cmd {
	return func() tea.Msg { return CloseMsg{Output: output} }
}

// KeyMap holds the host's own bindings.
type KeyMap struct {
	Cancel key.Binding
}

// DefaultKeyMap binds Esc to cancel.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}

// Host wraps the application model. While a modal is open it owns key and
// mouse input and draws the dialog over the app.
type Host struct {
	ctrl   *modal.Controller
	app    tea.Model
	styles Styles
	keys   KeyMap
	mouse  *mouse.Handler
	logger *slog.Logger

	view   tea.Model
	viewID uint64
	dirty  bool
	unsub  func()

	width, height int
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithStyles replaces the default backdrop and frame styles.
func WithStyles(s Styles) HostOption {
	return func(h *Host) { h.styles = s }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) HostOption {
	return func(h *Host) { h.keys = k }
}

// WithHostLogger sets the logger for contract errors raised from messages.
func WithHostLogger(l *slog.Logger) HostOption {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHost subscribes to ctrl and wraps app.
func NewHost(ctrl *modal.Controller, app tea.Model, opts ...HostOption) *Host {
	h := &Host{
		ctrl:   ctrl,
		app:    app,
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
		mouse:  mouse.NewHandler(),
		logger: slog.Default(),
		dirty:  ctrl.IsOpen(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.unsub = ctrl.Subscribe(func(*modal.State) { h.dirty = true })
	return h
}

// Detach stops observing the controller.
func (h *Host) Detach() {
	if h.unsub != nil {
		h.unsub()
		h.unsub = nil
	}
}

// App returns the wrapped application model.
func (h *Host) App() tea.Model { return h.app }

// Mounted returns the model of the open modal, or nil.
func (h *Host) Mounted() tea.Model { return h.view }

func (h *Host) Init() tea.Cmd {
	return tea.Batch(h.app.Init(), h.sync())
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Mount anything opened since the last update before routing input.
	cmds := []tea.Cmd{h.sync()}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		cmds = append(cmds, h.updateApp(msg), h.updateView(msg))

	case tea.KeyMsg:
		if h.view == nil {
			cmds = append(cmds, h.updateApp(msg))
			break
		}
		if st := h.ctrl.Current(); st != nil && st.Cancelable() && key.Matches(msg, h.keys.Cancel) {
			h.ctrl.Cancel()
			break
		}
		cmds = append(cmds, h.updateView(msg))

	case tea.MouseMsg:
		if h.view == nil {
			cmds = append(cmds, h.updateApp(msg))
			break
		}
		cmds = append(cmds, h.handleMouse(msg))

	case CancelMsg:
		h.ctrl.Cancel()

	case CloseMsg:
		if err := h.ctrl.Close(msg.Output); err != nil {
			h.logger.Error("close modal", "err", err)
		}

	default:
		cmds = append(cmds, h.updateApp(msg), h.updateView(msg))
	}

	cmds = append(cmds, h.sync())
	return h, tea.Batch(cmds...)
}

// handleMouse cancels on a backdrop click. Hover and wheel events only
// reach the view while the pointer is over the dialog.
func (h *Host) handleMouse(msg tea.MouseMsg) tea.Cmd {
	action := h.mouse.HandleMouse(msg)
	onDialog := action.In(regionDialog)

	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if !onDialog {
			h.ctrl.Cancel()
			return nil
		}
	case mouse.ActionHover, mouse.ActionScrollUp, mouse.ActionScrollDown:
		if !onDialog {
			return nil
		}
	}
	return h.updateView(msg)
}

func (h *Host) updateApp(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.app, cmd = h.app.Update(msg)
	return cmd
}

func (h *Host) updateView(msg tea.Msg) tea.Cmd {
	if h.view == nil {
		return nil
	}
	var cmd tea.Cmd
	h.view, cmd = h.view.Update(msg)
	return cmd
}

// sync mounts whatever the controller holds now. Mounting can itself
// change the slot, so it repeats until the slot is stable.
func (h *Host) sync() tea.Cmd {
	var cmds []tea.Cmd
	for h.dirty {
		h.dirty = false
		st := h.ctrl.Current()
		if st == nil {
			h.view, h.viewID = nil, 0
			break
		}
		if st.ID() == h.viewID {
			continue
		}
		h.viewID = st.ID()
		h.mouse.Clear()
		h.view = st.Mount()
		cmds = append(cmds, h.view.Init())
		if h.width > 0 {
			cmds = append(cmds, h.updateView(tea.WindowSizeMsg{Width: h.width, Height: h.height}))
		}
	}
	return tea.Batch(cmds...)
}

func (h *Host) View() string {
	base := h.app.View()
	if h.view == nil {
		return base
	}

	width, height := h.width, h.height
	if width == 0 || height == 0 {
		width, height = lipgloss.Width(base), lipgloss.Height(base)
	}

	dialog := h.styles.Root.Render(h.view.View())
	dw, dh := lipgloss.Width(dialog), lipgloss.Height(dialog)
	x := max((width-dw)/2, 0)
	y := max((height-dh)/2, 0)

	h.mouse.HitMap.Clear()
	h.mouse.HitMap.AddRect(regionBackdrop, 0, 0, width, height)
	h.mouse.HitMap.AddRect(regionDialog, x, y, dw, dh)

	return Overlay(h.styles.backdrop(base, width, height), dialog, x, y, width, height)
}
