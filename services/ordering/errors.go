package ordering

import "fmt"

// CollaboratorError wraps a transient catalog or order backend failure.
// Session state is always preserved so the user can retry.
type CollaboratorError struct {
	Op      string
	Message string
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func newCollaboratorError(op string, err error) error {
	return &CollaboratorError{Op: op, Message: err.Error()}
}
