package models

import (
	"time"

	"gorm.io/gorm"
)

// Service represents a decoration package offered in the catalog
type Service struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"service_name" gorm:"type:varchar(200);not null"`
	Category       string         `json:"category" gorm:"type:varchar(100);not null;index"`
	Location       string         `json:"location" gorm:"type:varchar(100);not null;index"`
	Cost           float64        `json:"cost" gorm:"type:decimal(10,2);not null"`
	Unit           string         `json:"unit" gorm:"type:varchar(50)"`
	Description    string         `json:"description" gorm:"type:text"`
	ImageURL       string         `json:"image" gorm:"type:varchar(500)"`
	CreatedByEmail string         `json:"createdByEmail" gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// ServiceCreate represents the request structure for creating/updating services
type ServiceCreate struct {
	Name        string  `json:"service_name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Cost        float64 `json:"cost" binding:"required,gt=0"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
