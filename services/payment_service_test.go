package services

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"decoriva-server/config"
	"decoriva-server/models"
)

func TestMain(m *testing.M) {
	config.Load()
	os.Exit(m.Run())
}

func verifyFixture() (*models.PaymentSession, *models.Booking) {
	session := &models.PaymentSession{
		SessionID: "cs_test_1",
		BookingID: 7,
		UserEmail: "mina@example.com",
		Amount:    600,
		Status:    models.PaymentSessionPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	booking := &models.Booking{
		ID:        7,
		UserEmail: "mina@example.com",
		Price:     600,
		Status:    models.BookingStatusPending,
	}
	return session, booking
}

func TestDecideVerificationSettlesMatchingPair(t *testing.T) {
	session, booking := verifyFixture()

	decision := DecideVerification(session, booking, "mina@example.com", time.Now())

	assert.Equal(t, VerifySettle, decision)
}

func TestDecideVerificationRejectsForeignBooking(t *testing.T) {
	session, booking := verifyFixture()
	booking.ID = 8

	decision := DecideVerification(session, booking, "mina@example.com", time.Now())

	assert.Equal(t, VerifyMismatch, decision)
}

func TestDecideVerificationRejectsForeignUser(t *testing.T) {
	session, booking := verifyFixture()

	decision := DecideVerification(session, booking, "other@example.com", time.Now())

	assert.Equal(t, VerifyMismatch, decision)
}

func TestDecideVerificationIsIdempotent(t *testing.T) {
	session, booking := verifyFixture()
	session.Status = models.PaymentSessionCompleted
	booking.Status = models.BookingStatusPaid

	decision := DecideVerification(session, booking, "mina@example.com", time.Now())

	assert.Equal(t, VerifyAlreadyPaid, decision)
}

func TestDecideVerificationIdempotentAfterAssignment(t *testing.T) {
	// Re-verifying after the admin already assigned a decorator must not
	// drag the booking back to paid.
	session, booking := verifyFixture()
	session.Status = models.PaymentSessionCompleted
	booking.Status = models.BookingStatusAssigned

	decision := DecideVerification(session, booking, "mina@example.com", time.Now())

	assert.Equal(t, VerifyAlreadyPaid, decision)
}

func TestDecideVerificationRejectsExpiredSession(t *testing.T) {
	session, booking := verifyFixture()
	session.ExpiresAt = time.Now().Add(-time.Minute)

	decision := DecideVerification(session, booking, "mina@example.com", time.Now())

	assert.Equal(t, VerifyExpired, decision)
}

func TestDecideVerificationRejectsPaidBookingWithPendingSession(t *testing.T) {
	// A second, unused session cannot settle a booking paid through
	// another one.
	session, booking := verifyFixture()
	booking.Status = models.BookingStatusPaid

	decision := DecideVerification(session, booking, "mina@example.com", time.Now())

	assert.Equal(t, VerifyMismatch, decision)
}

func TestCheckoutURLCarriesRedirects(t *testing.T) {
	url := CheckoutURL("cs_test_1")

	assert.Contains(t, url, "cs_test_1")
	assert.Contains(t, url, "success_url=")
	assert.Contains(t, url, "cancel_url=")
}
