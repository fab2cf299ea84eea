package round

import (
	"errors"
	"fmt"
)

// ErrContract is matched by every error returned for a call made in the
// wrong state. These indicate a bug in the caller, not a gameplay event.
var ErrContract = errors.New("round: contract violation")

// ContractError describes which operation was called and in what state.
type ContractError struct {
	Op     string
	State  State
	Reason string
}

func (e *ContractError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("round: %s in state %s: %s", e.Op, e.State, e.Reason)
	}
	return fmt.Sprintf("round: %s not allowed in state %s", e.Op, e.State)
}

// Is reports ErrContract as a match so callers can use errors.Is.
func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}

func contractErr(op string, s State, reason string) error {
	return &ContractError{Op: op, State: s, Reason: reason}
}
