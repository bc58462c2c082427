package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the
// 'push_subscriptions' table. The registration reference is a weak id-only
// backlink: deleting a registration (which this system never does) would not
// cascade here.
type PushSubscriptionModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	RegistrationID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_subscription_identity"`
	DocumentHash   string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_subscription_identity"`
	Endpoint       string     `gorm:"type:text;not null;uniqueIndex:idx_subscription_identity"`
	P256dh         string     `gorm:"type:text;not null"`
	Auth           string     `gorm:"type:text;not null"`
	Status         string     `gorm:"type:varchar(16);not null;default:'active';index"`

	CompanyName        string `gorm:"type:varchar(255)"`
	RegistrationStatus string `gorm:"type:varchar(32)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
