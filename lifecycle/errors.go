package lifecycle

import "errors"

var (
	// ErrValidation is returned for malformed booking input
	ErrValidation = errors.New("invalid booking input")

	// ErrAuthorization is returned when the actor's role or ownership does not
	// permit the attempted operation
	ErrAuthorization = errors.New("actor not authorized for this transition")

	// ErrInvalidTransition is returned for a non-adjacent or terminal-state
	// mutation attempt
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrNotCancellable is returned when cancelling a booking that is no longer
	// pending
	ErrNotCancellable = errors.New("booking can only be cancelled while pending")

	// ErrNotFound is returned for a stale or unknown booking id
	ErrNotFound = errors.New("booking not found")
)
