package modal

// Forwarder is handed to a view so it can replace itself. It is bound to
// one instance and to the callbacks of the outermost Open.
type Forwarder[O any] struct {
	c     *Controller
	owner *State
	b     *binding[O]
}

// Active reports whether the instance this forwarder belongs to still
// holds the slot.
func (f Forwarder[O]) Active() bool {
	return f.c != nil && f.c.cell.Get() == f.owner && !f.owner.settled
}

// Forward replaces the modal that owns f with view. The new view must
// report the same output type; its close and cancel go to the callbacks
// supplied to the original Open.
func Forward[I, O any](f Forwarder[O], view View[I, O], data ForwardData[I]) error {
	if f.c == nil {
		return &ContractError{Op: "forward", Reason: "forwarder is not bound to a modal"}
	}
	if view == nil {
		return &ContractError{Op: "forward", ID: f.owner.id, Reason: "nil view"}
	}
	if !f.Active() {
		f.c.emit(Event{Action: ActionStale, ID: f.owner.id})
		return &ContractError{Op: "forward", ID: f.owner.id, Reason: "modal is no longer active"}
	}
	install(f.c, view, data.Input, f.b, ActionForward)
	return nil
}
