package modal

import (
	"fmt"
	"log/slog"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the modal currently held in a controller's slot. It is
// type-erased so the presentation layer can handle any view; the typed
// contract lives in the closures built by Open and Forward.
type State struct {
	id         uint64
	origin     uint64
	input      any
	cancelable bool
	settled    bool

	mount    func() tea.Model
	deliver  func(output any) (func(), error)
	onCancel func()
}

// ID identifies this instance. Every Open and Forward creates a new one.
func (s *State) ID() uint64 { return s.id }

// Origin is the ID of the outermost Open in a forwarding chain.
func (s *State) Origin() uint64 { return s.origin }

// Forwarded reports whether this instance was installed by Forward.
func (s *State) Forwarded() bool { return s.origin != s.id }

// Input returns the input bound at open time.
func (s *State) Input() any { return s.input }

// Cancelable is the effective cancel flag, resolved when the chain was
// opened.
func (s *State) Cancelable() bool { return s.cancelable }

// Mount invokes the view with its props and returns the model to render.
func (s *State) Mount() tea.Model { return s.mount() }

// binding is the caller side of a forwarding chain: everything supplied to
// the outermost Open that every forwarded view reports back through.
type binding[O any] struct {
	onClose    func(O)
	onCancel   func()
	cancelable bool
	origin     uint64
}

// Controller owns the single modal slot. It is not safe for concurrent
// use; call it from the bubbletea Update loop.
type Controller struct {
	cell              Cell[*State]
	defaultCancelable bool
	logger            *slog.Logger
	observer          func(Event)
	seq               uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaultCancelable sets the flag used when Data.Cancel is
// CancelDefault.
func WithDefaultCancelable(v bool) Option {
	return func(c *Controller) { c.defaultCancelable = v }
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCell stores the slot in a host-supplied cell instead of an
// in-memory one. The cell should hold nil.
func WithCell(cell Cell[*State]) Option {
	return func(c *Controller) {
		if cell != nil {
			c.cell = cell
		}
	}
}

// WithObserver registers fn to receive every transition event.
func WithObserver(fn func(Event)) Option {
	return func(c *Controller) { c.observer = fn }
}

// New returns an empty controller. Modals are cancelable by default.
func New(opts ...Option) *Controller {
	c := &Controller{
		defaultCancelable: true,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cell == nil {
		c.cell = NewCell[*State](nil)
	}
	return c
}

// Current returns the open modal, or nil.
func (c *Controller) Current() *State {
	return c.cell.Get()
}

// IsOpen returns true if a modal holds the slot.
func (c *Controller) IsOpen() bool {
	return c.cell.Get() != nil
}

// Subscribe calls fn with the new slot value after every change.
func (c *Controller) Subscribe(fn func(*State)) (unsubscribe func()) {
	return c.cell.Subscribe(fn)
}

// DefaultCancelable returns the flag applied to CancelDefault opens.
func (c *Controller) DefaultCancelable() bool {
	return c.defaultCancelable
}

// SetDefaultCancelable changes the default for subsequent opens. A modal
// already showing keeps the flag it was opened with.
func (c *Controller) SetDefaultCancelable(v bool) {
	c.defaultCancelable = v
}

// Open shows view with data, replacing whatever modal is open. The
// replaced modal is discarded without running its OnClose or OnCancel.
func Open[I, O any](c *Controller, view View[I, O], data Data[I, O]) error {
	if c == nil {
		return &ContractError{Op: "open", Reason: "nil controller"}
	}
	if view == nil {
		return &ContractError{Op: "open", Reason: "nil view"}
	}
	if data.OnCancel != nil && data.Cancel == CancelBlocked {
		return &ContractError{Op: "open", Reason: "OnCancel supplied for a modal that cannot be cancelled"}
	}

	b := &binding[O]{
		onClose:    data.OnClose,
		onCancel:   data.OnCancel,
		cancelable: c.resolveCancelable(data.Cancel, data.OnCancel != nil),
	}
	install(c, view, data.Input, b, ActionOpen)
	return nil
}

// Show opens a view that takes no input and reports no output.
func Show(c *Controller, view View[Void, Void]) error {
	return Open(c, view, Data[Void, Void]{})
}

func (c *Controller) resolveCancelable(p CancelPolicy, hasOnCancel bool) bool {
	switch p {
	case CancelAllowed:
		return true
	case CancelBlocked:
		return false
	default:
		return hasOnCancel || c.defaultCancelable
	}
}

// install writes a new instance of view into the slot.
func install[I, O any](c *Controller, view View[I, O], input I, b *binding[O], action Action) {
	c.seq++
	st := &State{
		id:         c.seq,
		input:      input,
		cancelable: b.cancelable,
		onCancel:   b.onCancel,
	}
	if b.origin == 0 {
		b.origin = st.id
	}
	st.origin = b.origin

	st.deliver = func(output any) (func(), error) {
		var out O
		if output != nil {
			v, ok := output.(O)
			if !ok {
				return nil, &ContractError{
					Op:     "close",
					ID:     st.id,
					Reason: fmt.Sprintf("output %T does not match %v", output, reflect.TypeFor[O]()),
				}
			}
			out = v
		}
		return func() {
			if b.onClose != nil {
				b.onClose(out)
			}
		}, nil
	}

	st.mount = func() tea.Model {
		return view(Props[I, O]{
			Input: input,
			Close: func(out O) {
				if c.cell.Get() != st || st.settled {
					c.emit(Event{Action: ActionStale, ID: st.id})
					return
				}
				c.settle(st, ActionClose, func() {
					if b.onClose != nil {
						b.onClose(out)
					}
				})
			},
			Forward:    Forwarder[O]{c: c, owner: st, b: b},
			Cancelable: b.cancelable,
		})
	}

	var prevID uint64
	if prev := c.cell.Get(); prev != nil {
		prevID = prev.id
		if action == ActionOpen && !prev.settled {
			c.emit(Event{Action: ActionDiscard, ID: prev.id})
		}
		prev.settled = true
	}
	c.cell.Set(st)
	c.emit(Event{Action: action, ID: st.id, Prev: prevID})
}

// Close ends the open modal, delivering output to its opener's OnClose. A
// nil output delivers the zero value of the view's output type. Closing
// with nothing open is a no-op.
func (c *Controller) Close(output any) error {
	st := c.cell.Get()
	if st == nil || st.settled {
		return nil
	}
	fire, err := st.deliver(output)
	if err != nil {
		return err
	}
	c.settle(st, ActionClose, fire)
	return nil
}

// Cancel dismisses the open modal if it is cancelable. OnCancel runs if
// supplied; OnClose never does.
func (c *Controller) Cancel() {
	st := c.cell.Get()
	if st == nil || st.settled {
		return
	}
	if !st.cancelable {
		c.emit(Event{Action: ActionCancelBlocked, ID: st.id})
		return
	}
	c.settle(st, ActionCancel, st.onCancel)
}

// settle runs the final callback of st and clears the slot, unless the
// callback already opened something else.
func (c *Controller) settle(st *State, action Action, fire func()) {
	st.settled = true
	c.emit(Event{Action: action, ID: st.id})
	if fire != nil {
		fire()
	}
	if c.cell.Get() == st {
		c.cell.Set(nil)
	}
}

func (c *Controller) emit(ev Event) {
	c.logger.Debug("modal transition", "action", ev.Action, "id", ev.ID, "prev", ev.Prev)
	if c.observer != nil {
		c.observer(ev)
	}
}
