package services

import "errors"

var (
	// ErrSessionNotFound is returned when a checkout session does not exist.
	ErrSessionNotFound = errors.New("payment session not found")

	// ErrVerificationMismatch is returned when a session and booking do not
	// belong together, or the session was issued to a different user.
	ErrVerificationMismatch = errors.New("payment verification mismatch")

	// ErrSessionExpired is returned when a checkout session has lapsed.
	ErrSessionExpired = errors.New("payment session expired")

	// ErrBookingNotPayable is returned when the booking is past the point
	// where payment applies.
	ErrBookingNotPayable = errors.New("booking is not awaiting payment")
)
