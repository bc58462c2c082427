package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel is the GORM-specific struct for the 'registrations' table.
// It represents an exhibitor's application record. Rows are never deleted;
// cancellation is a status value.
type RegistrationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Document       string    `gorm:"type:varchar(14);not null;uniqueIndex"`
	CompanyName    string    `gorm:"type:varchar(255);not null"`
	ContactEmail   string    `gorm:"type:varchar(255);not null"`
	ContactPhone   string    `gorm:"type:varchar(32)"`
	Segment        string    `gorm:"type:varchar(100)"`
	StandsQuantity int       `gorm:"not null"`
	Status         string    `gorm:"type:varchar(32);not null;index"`

	SlotStart       *int
	SlotEnd         *int
	WindowStartedAt *time.Time
	WindowExpiresAt *time.Time
	// Choices is the canonical ascending CSV form, e.g. "1,3,5".
	Choices            string `gorm:"type:text;not null;default:''"`
	SubmittedAt        *time.Time
	NotificationsCount int `gorm:"not null;default:0"`
	LastNotificationAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "registrations"
}
