package promise

import (
	"errors"
	"fmt"
)

// ErrRejected matches every *RejectionError.
var ErrRejected = errors.New("promise rejected")

// RejectionError carries a rejection reason that is not an error value.
type RejectionError struct {
	Reason any
}

func (e *RejectionError) Error() string {
	return fmt.Sprint(e.Reason)
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// Reason converts v into an error suitable for Reject. Errors are returned
// unchanged, anything else is wrapped in a *RejectionError.
func Reason(v any) error {
	if err, ok := v.(error); ok && err != nil {
		return err
	}
	return &RejectionError{Reason: v}
}
