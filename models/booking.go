package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusAssigned  BookingStatus = "assigned"
	BookingStatusPlanning  BookingStatus = "planning"
	BookingStatusMaterials BookingStatus = "materials"
	BookingStatusOnWay     BookingStatus = "on_way"
	BookingStatusSetup     BookingStatus = "setup"
	BookingStatusCompleted BookingStatus = "completed"
)

// BookingAddon is one optional extra selected at booking time. The price is
// frozen into the booking, not re-read from any catalog.
type BookingAddon struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Booking struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	ServiceID      uint           `json:"serviceId" gorm:"not null;index"`
	ServiceName    string         `json:"serviceName" gorm:"type:varchar(200);not null"`
	ImageURL       string         `json:"image" gorm:"type:varchar(500)"`
	Price          float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	UserEmail      string         `json:"userEmail" gorm:"type:varchar(255);not null;index"`
	UserName       string         `json:"userName" gorm:"type:varchar(255)"`
	Date           time.Time      `json:"date" gorm:"not null"`
	Address        string         `json:"address" gorm:"size:500;not null"`
	Notes          string         `json:"notes" gorm:"size:1000"`
	Addons         []BookingAddon `json:"addons" gorm:"serializer:json"`
	CouponCode     string         `json:"couponCode" gorm:"type:varchar(50)"`
	Status         BookingStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','paid','assigned','planning','materials','on_way','setup','completed');index"`
	DecoratorEmail *string        `json:"decoratorEmail" gorm:"type:varchar(255);index"`
	TransactionID  *string        `json:"transactionId" gorm:"type:varchar(100)"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BookingCreate represents the request structure for creating a booking
type BookingCreate struct {
	ServiceID  uint           `json:"serviceId" binding:"required"`
	Date       time.Time      `json:"date" binding:"required"`
	Address    string         `json:"address" binding:"required"`
	Notes      string         `json:"notes"`
	Addons     []BookingAddon `json:"addons"`
	CouponCode string         `json:"couponCode"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}
