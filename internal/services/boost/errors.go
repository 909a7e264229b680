package boost

import "errors"

var (
	// ErrBoostNotFound is returned when no tracked boost matches the given ID
	ErrBoostNotFound = errors.New("boost not found")

	// ErrMessageNotFound is returned when no tracked boost is rendered on the
	// given message
	ErrMessageNotFound = errors.New("no boost for message")

	// ErrNotEditing is returned when a field update targets a boost that is
	// not paused for editing
	ErrNotEditing = errors.New("boost is not being edited")

	// ErrEditInProgress is returned when a second edit is requested while one
	// is outstanding
	ErrEditInProgress = errors.New("boost is already being edited")

	// ErrNotKeyholder is returned when someone other than the seated
	// keyholder tries to start the boost
	ErrNotKeyholder = errors.New("only the seated keyholder can start the boost")
)
