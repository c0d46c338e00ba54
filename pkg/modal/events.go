package modal

// Action names a slot transition.
type Action string

// Slot transitions reported to observers and the logger.
const (
	ActionOpen    Action = "open"
	ActionForward Action = "forward"
	// ActionDiscard is emitted for a modal overwritten by a new Open while
	// still showing. None of its callbacks run.
	ActionDiscard Action = "discard"
	ActionClose   Action = "close"
	ActionCancel  Action = "cancel"
	// ActionCancelBlocked is a dismissal ignored because the modal is not
	// cancelable.
	ActionCancelBlocked Action = "cancel_blocked"
	// ActionStale is a close or forward from an instance that no longer
	// holds the slot.
	ActionStale Action = "stale"
)

// Event describes one transition. ID is the instance the action applies
// to; Prev is the instance it replaced, if any.
type Event struct {
	Action Action
	ID     uint64
	Prev   uint64
}

// Changes reports whether the action alters what the slot holds.
func (a Action) Changes() bool {
	switch a {
	case ActionOpen, ActionForward, ActionClose, ActionCancel:
		return true
	default:
		return false
	}
}
