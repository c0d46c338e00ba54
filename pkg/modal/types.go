package modal

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Void marks a view that takes no input (I = Void) or reports no output
// (O = Void).
type Void struct{}

// View renders a modal. It is called once each time the modal is mounted
// and returns the bubbletea model that drives it until it closes.
type View[I, O any] func(p Props[I, O]) tea.Model

// Props is what a view is handed when it is mounted.
type Props[I, O any] struct {
	// Input is the value bound at open time. Zero for Void-input views.
	Input I

	// Close reports output to the original opener and clears the slot.
	// Calls made after this instance was replaced or closed are ignored.
	Close func(output O)

	// Forward replaces this modal with another view of the same output type.
	Forward Forwarder[O]

	// Cancelable is the cancel flag resolved when the chain was opened.
	// Views that can abort on their own use it to decide whether to ask
	// for cancellation or keep running.
	Cancelable bool
}

// Done closes the modal with the zero output. It is the close affordance
// for views whose output type is Void.
func (p Props[I, O]) Done() {
	var zero O
	p.Close(zero)
}

// CancelPolicy decides whether user dismissal (Esc, a backdrop click)
// closes the modal.
type CancelPolicy int

const (
	// CancelDefault defers to the controller's default cancelable flag.
	CancelDefault CancelPolicy = iota
	// CancelAllowed lets the user dismiss the modal.
	CancelAllowed
	// CancelBlocked ignores dismissal; only Close ends the modal.
	CancelBlocked
)

func (p CancelPolicy) String() string {
	switch p {
	case CancelAllowed:
		return "allowed"
	case CancelBlocked:
		return "blocked"
	default:
		return "default"
	}
}

// Data is the contract bundle supplied by the opener.
type Data[I, O any] struct {
	Input I

	// OnClose receives the modal's output. Nil when the caller does not
	// care about the result.
	OnClose func(output O)

	Cancel CancelPolicy

	// OnCancel fires instead of OnClose when the user dismisses the modal.
	// Supplying it with CancelDefault makes the modal cancelable.
	OnCancel func()
}

// ForwardData carries the input for a forwarded view. Callbacks and the
// cancel policy always come from the outermost Open.
type ForwardData[I any] struct {
	Input I
}
