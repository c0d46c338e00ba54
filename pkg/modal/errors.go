package modal

import (
	"errors"
	"fmt"
)

// ErrNoController is returned when no scope on the path to the root
// provides a controller.
var ErrNoController = errors.New("no modal controller in scope")

// ContractError reports a violated open/close/forward contract. These are
// programmer errors: the slot is left untouched when one is returned.
type ContractError struct {
	Op     string
	Reason string
	ID     uint64
}

func (e *ContractError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("modal %s (#%d): %s", e.Op, e.ID, e.Reason)
	}
	return fmt.Sprintf("modal %s: %s", e.Op, e.Reason)
}
