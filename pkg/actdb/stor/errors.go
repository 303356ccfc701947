package stor

import (
	"errors"
)

var (
	// ErrActivityNotFound - no activity with that name in the registry.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadyRegistered - the email is already on the activity's roster.
	ErrAlreadyRegistered = errors.New("student is already signed up")

	// ErrNotRegistered - the email is not on the activity's roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")

	// ErrActivityFull - the roster is at max_participants. Only returned
	// when capacity enforcement is turned on.
	ErrActivityFull = errors.New("activity is full")
)
