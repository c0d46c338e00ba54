// Package modal provides a single-slot modal controller for bubbletea
// programs.
//
// A Controller holds at most one open modal. Any model in the tree can open
// a typed view, hand it input, and receive its output when it closes. The
// user can dismiss a cancelable modal, and a view can replace itself with
// another view ("forwarding") without building a navigation stack.
//
// # Quick Start
//
//	ctrl := modal.New(modal.WithDefaultCancelable(true))
//
//	// Anywhere in Update():
//	modal.Open(ctrl, renameView, modal.Data[string, string]{
//	    Input:    issue.Title,
//	    OnClose:  func(title string) { m.title = title },
//	    OnCancel: func() { m.status = "rename cancelled" },
//	})
//
// The presentation side (see package ui) subscribes to the controller,
// mounts the current view, and calls Close or Cancel in response to input.
//
// # Views
//
// A view is a function from Props to a tea.Model:
//
//	var renameView modal.View[string, string] = func(p modal.Props[string, string]) tea.Model {
//	    return newRenameModel(p.Input, p.Close)
//	}
//
// Use Void for the input type of views that take none and for the output
// type of views that report none. Props.Done closes a Void-output view.
//
// # Forwarding
//
// Props.Forward replaces the current modal with a view of the same output
// type. Whatever the forwarded view closes with goes to the OnClose passed
// to the outermost Open; a dismissal goes to its OnCancel.
//
//	modal.Forward(p.Forward, confirmView, modal.ForwardData[string]{Input: "Discard changes?"})
//
// # Cancellation
//
// Cancel dismisses the open modal if its effective policy allows it. The
// policy is CancelAllowed, CancelBlocked, or CancelDefault, which takes the
// controller default at open time. OnCancel runs in place of OnClose, never
// alongside it. Views read the resolved flag from Props.Cancelable.
//
// # Replacing an open modal
//
// Opening while a modal is showing overwrites the slot. The replaced modal
// is discarded silently: neither its OnClose nor its OnCancel runs, and an
// ActionDiscard event is emitted so observers can see it happen.
//
// # Scopes
//
// Scope resolves the controller for a position in the UI tree. Provide one
// at the root; children look it up with Controller.
package modal
