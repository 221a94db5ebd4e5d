package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decoriva-server/models"
)

func statusPtr(s models.BookingStatus) *models.BookingStatus { return &s }

func strPtr(s string) *string { return &s }

func booking(status models.BookingStatus, decorator *string) *models.Booking {
	return &models.Booking{
		ID:             1,
		ServiceName:    "Garden Wedding Arch",
		Price:          600,
		UserEmail:      "client@example.com",
		Status:         status,
		DecoratorEmail: decorator,
	}
}

func TestNextFollowsOrder(t *testing.T) {
	for i, step := range Order[:len(Order)-1] {
		next, ok := Next(step)
		require.True(t, ok, "step %s should have a successor", step)
		assert.Equal(t, Order[i+1], next)
	}

	_, ok := Next(models.BookingStatusCompleted)
	assert.False(t, ok, "completed is terminal")

	_, ok = Next(models.BookingStatus("cancelled"))
	assert.False(t, ok, "unknown status has no successor")
}

func TestCanAdvanceRejectsSkips(t *testing.T) {
	for i, from := range Order {
		for j, to := range Order {
			got := CanAdvance(from, to)
			want := j == i+1
			assert.Equalf(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestDecoratorAdvancesOneStepAtATime(t *testing.T) {
	decorator := Actor{Email: "decor@example.com", Role: models.RoleDecorator}
	b := booking(models.BookingStatusAssigned, strPtr("decor@example.com"))

	for _, next := range []models.BookingStatus{
		models.BookingStatusPlanning,
		models.BookingStatusMaterials,
		models.BookingStatusOnWay,
		models.BookingStatusSetup,
		models.BookingStatusCompleted,
	} {
		patch := Patch{Status: statusPtr(next)}
		require.NoError(t, Authorize(b, decorator, patch))
		Apply(b, patch)
		assert.Equal(t, next, b.Status)
	}

	// Terminal: nothing advances past completed.
	err := Authorize(b, decorator, Patch{Status: statusPtr(models.BookingStatusCompleted)})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecoratorCannotSkipSteps(t *testing.T) {
	decorator := Actor{Email: "decor@example.com", Role: models.RoleDecorator}
	b := booking(models.BookingStatusAssigned, strPtr("decor@example.com"))

	err := Authorize(b, decorator, Patch{Status: statusPtr(models.BookingStatusSetup)})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDecoratorAuthorityRules(t *testing.T) {
	b := booking(models.BookingStatusAssigned, strPtr("decor@example.com"))
	planning := Patch{Status: statusPtr(models.BookingStatusPlanning)}

	// Only the assigned decorator may advance.
	err := Authorize(b, Actor{Email: "other@example.com", Role: models.RoleDecorator}, planning)
	assert.ErrorIs(t, err, ErrAuthorization)

	// An unassigned booking has no advancing decorator.
	unassigned := booking(models.BookingStatusPaid, nil)
	err = Authorize(unassigned, Actor{Email: "decor@example.com", Role: models.RoleDecorator}, planning)
	assert.ErrorIs(t, err, ErrAuthorization)

	// Decorators never touch the assignment itself.
	err = Authorize(b, Actor{Email: "decor@example.com", Role: models.RoleDecorator},
		Patch{DecoratorEmail: strPtr("someone@example.com")})
	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestCustomerCannotPatch(t *testing.T) {
	b := booking(models.BookingStatusPaid, nil)
	err := Authorize(b, Actor{Email: "client@example.com", Role: models.RoleUser},
		Patch{Status: statusPtr(models.BookingStatusAssigned)})
	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestPaidIsNeverPatchable(t *testing.T) {
	b := booking(models.BookingStatusPending, nil)
	for _, role := range []models.UserRole{models.RoleUser, models.RoleDecorator, models.RoleAdmin} {
		err := Authorize(b, Actor{Email: "anyone@example.com", Role: role},
			Patch{Status: statusPtr(models.BookingStatusPaid)})
		assert.ErrorIsf(t, err, ErrAuthorization, "role %s", role)
	}
}

func TestAdminAssignment(t *testing.T) {
	admin := Actor{Email: "admin@example.com", Role: models.RoleAdmin}

	// paid -> assigned with a chosen decorator.
	b := booking(models.BookingStatusPaid, nil)
	patch := Patch{DecoratorEmail: strPtr("decor@example.com"), Status: statusPtr(models.BookingStatusAssigned)}
	require.NoError(t, Authorize(b, admin, patch))
	Apply(b, patch)
	assert.Equal(t, models.BookingStatusAssigned, b.Status)
	require.NotNil(t, b.DecoratorEmail)
	assert.Equal(t, "decor@example.com", *b.DecoratorEmail)

	// Assignment before payment is out of order.
	pending := booking(models.BookingStatusPending, nil)
	err := Authorize(pending, admin, patch)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Admins cannot walk fulfillment steps.
	assigned := booking(models.BookingStatusAssigned, strPtr("decor@example.com"))
	err = Authorize(assigned, admin, Patch{Status: statusPtr(models.BookingStatusPlanning)})
	assert.ErrorIs(t, err, ErrAuthorization)

	// Empty decorator email is malformed input.
	err = Authorize(booking(models.BookingStatusPaid, nil), admin, Patch{DecoratorEmail: strPtr("")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminReassignmentKeepsProgress(t *testing.T) {
	admin := Actor{Email: "admin@example.com", Role: models.RoleAdmin}
	b := booking(models.BookingStatusMaterials, strPtr("decor@example.com"))

	patch := Patch{DecoratorEmail: strPtr("relief@example.com")}
	require.NoError(t, Authorize(b, admin, patch))
	Apply(b, patch)
	assert.Equal(t, models.BookingStatusMaterials, b.Status, "reassignment must not rewind progress")
	assert.Equal(t, "relief@example.com", *b.DecoratorEmail)

	// Echoing the current step back is a harmless no-op.
	echo := Patch{DecoratorEmail: strPtr("third@example.com"), Status: statusPtr(models.BookingStatusMaterials)}
	require.NoError(t, Authorize(b, admin, echo))

	// Forcing a different step alongside reassignment is rejected.
	err := Authorize(b, admin, Patch{
		DecoratorEmail: strPtr("third@example.com"),
		Status:         statusPtr(models.BookingStatusAssigned),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Completed bookings are closed to reassignment.
	done := booking(models.BookingStatusCompleted, strPtr("decor@example.com"))
	err = Authorize(done, admin, Patch{DecoratorEmail: strPtr("relief@example.com")})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestValidateCancel(t *testing.T) {
	owner := Actor{Email: "client@example.com", Role: models.RoleUser}

	assert.NoError(t, ValidateCancel(booking(models.BookingStatusPending, nil), owner))

	err := ValidateCancel(booking(models.BookingStatusAssigned, strPtr("d@example.com")), owner)
	assert.ErrorIs(t, err, ErrNotCancellable)

	err = ValidateCancel(booking(models.BookingStatusPending, nil),
		Actor{Email: "stranger@example.com", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestValidateCreate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	// Same-day bookings are allowed; only past dates are rejected.
	assert.NoError(t, ValidateCreate(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "12 Rose St", now))
	assert.NoError(t, ValidateCreate(now.AddDate(0, 1, 0), "12 Rose St", now))

	err := ValidateCreate(now.AddDate(0, 0, -1), "12 Rose St", now)
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateCreate(now.AddDate(0, 1, 0), "", now)
	assert.ErrorIs(t, err, ErrValidation)
}

// Full walk of the documented flow: book with an add-on, pay, assign, advance
// one step per call to completion.
func TestFulfillmentScenario(t *testing.T) {
	admin := Actor{Email: "admin@example.com", Role: models.RoleAdmin}
	decorator := Actor{Email: "d@example.com", Role: models.RoleDecorator}

	b := &models.Booking{
		ID:          7,
		ServiceName: "Ballroom Package",
		Price:       600, // 500 base + 100 add-on, frozen at creation
		UserEmail:   "client@example.com",
		Addons:      []models.BookingAddon{{Name: "Extra Floral Arrangements", Price: 100}},
		Status:      models.BookingStatusPending,
	}

	// Payment is applied by the verification path, not Authorize.
	b.Status = models.BookingStatusPaid

	assign := Patch{DecoratorEmail: strPtr("d@example.com"), Status: statusPtr(models.BookingStatusAssigned)}
	require.NoError(t, Authorize(b, admin, assign))
	Apply(b, assign)

	// Jumping straight to setup is rejected.
	err := Authorize(b, decorator, Patch{Status: statusPtr(models.BookingStatusSetup)})
	require.ErrorIs(t, err, ErrInvalidTransition)

	for cur := b.Status; cur != models.BookingStatusCompleted; cur = b.Status {
		next, ok := Next(cur)
		require.True(t, ok)
		patch := Patch{Status: statusPtr(next)}
		require.NoError(t, Authorize(b, decorator, patch))
		Apply(b, patch)
	}
	assert.Equal(t, models.BookingStatusCompleted, b.Status)

	// And the finished booking can no longer be cancelled by anyone.
	err = ValidateCancel(b, Actor{Email: "client@example.com", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrNotCancellable)
}
