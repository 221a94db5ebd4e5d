package models

import (
	"time"
)

type PaymentSessionStatus string

const (
	PaymentSessionPending   PaymentSessionStatus = "pending"
	PaymentSessionCompleted PaymentSessionStatus = "completed"
	PaymentSessionExpired   PaymentSessionStatus = "expired"
)

// PaymentSession is one hosted-checkout session issued for a booking. Sessions
// are the only evidence accepted by payment verification: a verify call whose
// sessionId/bookingId pair does not match a stored session marks nothing paid.
type PaymentSession struct {
	ID         uint                 `json:"id" gorm:"primaryKey"`
	SessionID  string               `json:"sessionId" gorm:"type:varchar(100);uniqueIndex;not null"`
	BookingID  uint                 `json:"bookingId" gorm:"not null;index"`
	UserEmail  string               `json:"userEmail" gorm:"type:varchar(255);not null"`
	Amount     float64              `json:"amount" gorm:"type:decimal(10,2);not null"`
	CouponCode string               `json:"couponCode" gorm:"type:varchar(50)"`
	Status     PaymentSessionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','completed','expired')"`
	ExpiresAt  time.Time            `json:"expiresAt" gorm:"not null"`
	CreatedAt  time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the PaymentSession model
func (PaymentSession) TableName() string {
	return "payment_sessions"
}
