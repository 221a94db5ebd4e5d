// Package lifecycle implements the booking fulfillment state machine: the
// ordered step set, single-step advancement and the per-role transition
// authority rules. It is pure; persistence stays in the callers.
package lifecycle

import (
	"time"

	"decoriva-server/models"
)

// Order is the forward-only fulfillment progression. A booking never moves
// backward and never skips a step; the only exit outside this list is deletion
// of a still-pending booking by its owner.
var Order = []models.BookingStatus{
	models.BookingStatusPending,
	models.BookingStatusPaid,
	models.BookingStatusAssigned,
	models.BookingStatusPlanning,
	models.BookingStatusMaterials,
	models.BookingStatusOnWay,
	models.BookingStatusSetup,
	models.BookingStatusCompleted,
}

// Index returns the position of a status in the progression, or -1 for an
// unknown status.
func Index(s models.BookingStatus) int {
	for i, step := range Order {
		if step == s {
			return i
		}
	}
	return -1
}

// IsStep reports whether s is a known lifecycle step.
func IsStep(s models.BookingStatus) bool {
	return Index(s) >= 0
}

// Next returns the immediate successor of s. ok is false when s is terminal or
// unknown.
func Next(s models.BookingStatus) (models.BookingStatus, bool) {
	i := Index(s)
	if i < 0 || i == len(Order)-1 {
		return "", false
	}
	return Order[i+1], true
}

// CanAdvance reports whether to is exactly the immediate successor of from.
func CanAdvance(from, to models.BookingStatus) bool {
	next, ok := Next(from)
	return ok && next == to
}

// Actor is the authenticated caller attempting an operation on a booking.
type Actor struct {
	Email string
	Role  models.UserRole
}

// Patch is the mutable surface of PATCH /bookings/:id.
type Patch struct {
	Status         *models.BookingStatus
	DecoratorEmail *string
}

// inAssignableSpan reports whether a booking is inside the decorator-owned
// span of the progression (assigned through setup).
func inAssignableSpan(s models.BookingStatus) bool {
	i := Index(s)
	return i >= Index(models.BookingStatusAssigned) && i < Index(models.BookingStatusCompleted)
}

// Authorize validates a status/decorator patch against the transition authority
// table. It never mutates the booking; callers apply the patch only on nil
// error. The current booking row must be freshly read: authority is judged
// against the store's state, not a client-held copy.
func Authorize(b *models.Booking, actor Actor, patch Patch) error {
	if patch.Status == nil && patch.DecoratorEmail == nil {
		return ErrValidation
	}
	if patch.Status != nil && !IsStep(*patch.Status) {
		return ErrValidation
	}
	// pending -> paid belongs to the payment collaborator alone; it arrives
	// through payment verification, never through a booking patch.
	if patch.Status != nil && *patch.Status == models.BookingStatusPaid {
		return ErrAuthorization
	}

	switch actor.Role {
	case models.RoleAdmin:
		return authorizeAdmin(b, patch)
	case models.RoleDecorator:
		return authorizeDecorator(b, actor, patch)
	default:
		return ErrAuthorization
	}
}

// authorizeAdmin covers assignment and reassignment. Admins choose who
// fulfills a booking; they never walk the fulfillment steps themselves.
func authorizeAdmin(b *models.Booking, patch Patch) error {
	if patch.DecoratorEmail == nil {
		return ErrAuthorization
	}
	if *patch.DecoratorEmail == "" {
		return ErrValidation
	}

	switch {
	case b.Status == models.BookingStatusPaid:
		// First assignment: paid -> assigned.
		if patch.Status != nil && *patch.Status != models.BookingStatusAssigned {
			return ErrInvalidTransition
		}
		return nil
	case inAssignableSpan(b.Status):
		// Reassignment replaces the decorator and leaves progress where it is.
		// A status naming the current step is accepted as a no-op; anything
		// else would move the booking out of order.
		if patch.Status != nil && *patch.Status != b.Status {
			return ErrInvalidTransition
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}

// authorizeDecorator covers single-step advancement by the assigned decorator.
func authorizeDecorator(b *models.Booking, actor Actor, patch Patch) error {
	if patch.DecoratorEmail != nil {
		// A decorator may not disown or hand off their workload.
		return ErrAuthorization
	}
	if b.DecoratorEmail == nil || *b.DecoratorEmail != actor.Email {
		return ErrAuthorization
	}
	if patch.Status == nil {
		return ErrValidation
	}
	if !inAssignableSpan(b.Status) {
		return ErrInvalidTransition
	}
	if !CanAdvance(b.Status, *patch.Status) {
		return ErrInvalidTransition
	}
	return nil
}

// Apply writes an authorized patch onto the booking.
func Apply(b *models.Booking, patch Patch) {
	if patch.DecoratorEmail != nil {
		b.DecoratorEmail = patch.DecoratorEmail
		if b.Status == models.BookingStatusPaid {
			b.Status = models.BookingStatusAssigned
		}
	}
	if patch.Status != nil && *patch.Status != b.Status {
		b.Status = *patch.Status
	}
}

// ValidateCancel enforces owner-only, pre-payment cancellation.
func ValidateCancel(b *models.Booking, actor Actor) error {
	if b.UserEmail != actor.Email {
		return ErrAuthorization
	}
	if b.Status != models.BookingStatusPending {
		return ErrNotCancellable
	}
	return nil
}

// ValidateCreate checks booking input at creation time. The event date must
// not lie before today; time-of-day is not significant.
func ValidateCreate(date time.Time, address string, now time.Time) error {
	if address == "" {
		return ErrValidation
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return ErrValidation
	}
	return nil
}
