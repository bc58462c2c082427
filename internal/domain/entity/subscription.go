// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the delivery eligibility of a push subscription.
type SubscriptionStatus string

const (
	// SubscriptionActive means the endpoint is eligible for delivery.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionRevoked means the client unsubscribed or the push service
	// reported the endpoint permanently gone.
	SubscriptionRevoked SubscriptionStatus = "revoked"
)

// PushSubscription is one device's registered Web Push endpoint for one
// registration's hashed identity. The registration reference is weak: a
// subscription may outlive its registration and nothing cascades.
type PushSubscription struct {
	ID             uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the subscription.
	RegistrationID *uuid.UUID `json:"registration_id"` // Weak back-reference to the registration, by id only.
	DocumentHash   string     `json:"document_hash"`   // Salted one-way hash of the normalized document; never the raw value.
	Endpoint       string     `json:"endpoint"`        // Opaque push-service address, unique per device+browser installation.
	P256dh         string     `json:"p256dh"`          // Client public key of the subscription credential.
	Auth           string     `json:"auth"`            // Client auth secret of the subscription credential.

	Status SubscriptionStatus `json:"status"` // Only active subscriptions are eligible for delivery.

	// Display snapshot taken at registration time, shown in the browser's
	// notification settings UI.
	CompanyName        string `json:"company_name"`
	RegistrationStatus Status `json:"registration_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
