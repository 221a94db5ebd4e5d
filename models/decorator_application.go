package models

import (
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus validates an application decision coming over the wire.
// Only approved/rejected are acceptable decisions; pending is the initial state
// and cannot be re-applied.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationStatusApproved, ApplicationStatusRejected:
		return ApplicationStatus(s), true
	default:
		return "", false
	}
}

// DecoratorApplication is a request from a regular user to become a decorator.
// Approval upgrades the applicant's User.Role to decorator in the same database
// transaction; the two writes are never allowed to diverge.
type DecoratorApplication struct {
	ID             uint              `json:"id" gorm:"primaryKey"`
	ApplicantEmail string            `json:"email" gorm:"type:varchar(255);not null;index"`
	Name           string            `json:"name" gorm:"type:varchar(255)"`
	PhotoURL       string            `json:"photo" gorm:"type:varchar(500)"`
	Specialty      string            `json:"specialty" gorm:"type:varchar(200);not null"`
	Experience     string            `json:"experience" gorm:"type:varchar(200)"`
	Portfolio      string            `json:"portfolio" gorm:"type:varchar(500)"`
	Status         ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','approved','rejected')"`
	AppliedAt      time.Time         `json:"appliedAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// DecoratorApplicationCreate represents the payload submitted by an applicant
type DecoratorApplicationCreate struct {
	Specialty  string `json:"specialty" binding:"required"`
	Experience string `json:"experience"`
	Portfolio  string `json:"portfolio"`
}

// TableName specifies the table name for the DecoratorApplication model
func (DecoratorApplication) TableName() string {
	return "decorator_applications"
}
