package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"decoriva-server/config"
	"decoriva-server/database"
	"decoriva-server/models"
)

// PaymentService issues hosted checkout sessions and settles bookings
// once a session is verified.
type PaymentService struct{}

// NewPaymentService creates a new payment service
func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// CheckoutSession is what the client needs to hand off to the hosted
// payment page.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
	Amount    string `json:"amount"`
}

// CreateSession opens a checkout session for a pending booking.
func (ps *PaymentService) CreateSession(booking *models.Booking, userEmail string) (*CheckoutSession, error) {
	if booking.Status != models.BookingStatusPending {
		return nil, ErrBookingNotPayable
	}

	amount := decimal.NewFromFloat(booking.Price)

	session := &models.PaymentSession{
		SessionID:  uuid.NewString(),
		BookingID:  booking.ID,
		UserEmail:  userEmail,
		Amount:     amount.InexactFloat64(),
		CouponCode: booking.CouponCode,
		Status:     models.PaymentSessionPending,
		ExpiresAt:  time.Now().Add(time.Duration(config.AppConfig.Payment.SessionExpiryHours) * time.Hour),
	}

	if err := database.DB.Create(session).Error; err != nil {
		return nil, err
	}

	log.Printf("💳 Checkout session %s opened for booking %d (%s)", session.SessionID, booking.ID, amount.StringFixed(2))

	return &CheckoutSession{
		SessionID: session.SessionID,
		URL:       CheckoutURL(session.SessionID),
		Amount:    amount.StringFixed(2),
	}, nil
}

// CheckoutURL builds the hosted payment page URL for a session.
func CheckoutURL(sessionID string) string {
	return fmt.Sprintf("%s/%s?success_url=%s&cancel_url=%s",
		config.AppConfig.Payment.CheckoutBaseURL,
		sessionID,
		config.AppConfig.Payment.SuccessURL,
		config.AppConfig.Payment.CancelURL,
	)
}

// VerifyDecision is the outcome of checking a session against a booking
// before any state is written.
type VerifyDecision int

const (
	// VerifySettle means the session matches and the booking should be paid.
	VerifySettle VerifyDecision = iota
	// VerifyAlreadyPaid means a prior verification already settled the booking.
	VerifyAlreadyPaid
	// VerifyMismatch means the session and booking do not belong together.
	VerifyMismatch
	// VerifyExpired means the session lapsed before verification.
	VerifyExpired
)

// DecideVerification checks a session against a booking without touching
// the database. Verification is idempotent: re-verifying a settled pair
// reports success without a second write.
func DecideVerification(session *models.PaymentSession, booking *models.Booking, userEmail string, now time.Time) VerifyDecision {
	if session.BookingID != booking.ID || session.UserEmail != userEmail {
		return VerifyMismatch
	}

	if session.Status == models.PaymentSessionCompleted && booking.Status != models.BookingStatusPending {
		return VerifyAlreadyPaid
	}

	if session.Status == models.PaymentSessionExpired || now.After(session.ExpiresAt) {
		return VerifyExpired
	}

	if booking.Status != models.BookingStatusPending {
		return VerifyMismatch
	}

	return VerifySettle
}

// Verify settles a booking against a checkout session. The session
// completion, the booking status flip and the transaction id land in a
// single database transaction.
func (ps *PaymentService) Verify(sessionID string, bookingID uint, userEmail string) error {
	var session models.PaymentSession
	if err := database.DB.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return ErrSessionNotFound
	}

	var booking models.Booking
	if err := database.DB.First(&booking, bookingID).Error; err != nil {
		return ErrSessionNotFound
	}

	switch DecideVerification(&session, &booking, userEmail, time.Now()) {
	case VerifyAlreadyPaid:
		return nil
	case VerifyMismatch:
		return ErrVerificationMismatch
	case VerifyExpired:
		return ErrSessionExpired
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		txID := session.SessionID
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingStatusPaid,
			"transaction_id": txID,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&session).Update("status", models.PaymentSessionCompleted).Error
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Booking %d paid via session %s", bookingID, sessionID)
	return nil
}

// ExpireStaleSessions marks pending sessions past their deadline as
// expired. Returns how many were flipped.
func (ps *PaymentService) ExpireStaleSessions() (int64, error) {
	result := database.DB.Model(&models.PaymentSession{}).
		Where("status = ? AND expires_at < ?", models.PaymentSessionPending, time.Now()).
		Update("status", models.PaymentSessionExpired)
	return result.RowsAffected, result.Error
}
