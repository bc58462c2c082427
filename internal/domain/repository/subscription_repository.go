// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"empreende/internal/domain/entity"
	"empreende/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for push-subscription database
// operations.
type SubscriptionRepository interface {
	// Upsert creates or refreshes a subscription keyed by
	// (registration_id, endpoint, document_hash), reactivating it and
	// refreshing the credential pair and display snapshot.
	Upsert(ctx context.Context, subscription *entity.PushSubscription) error

	// FindActiveByRegistration retrieves all active subscriptions for a
	// registration.
	FindActiveByRegistration(ctx context.Context, registrationID uuid.UUID) ([]*entity.PushSubscription, error)

	// FindActiveRegistrationIDs returns the distinct registration ids that
	// currently have at least one active subscription.
	FindActiveRegistrationIDs(ctx context.Context) ([]uuid.UUID, error)

	// Revoke marks a subscription revoked by its ID.
	Revoke(ctx context.Context, id uuid.UUID) error

	// RevokeByEndpoint marks revoked every subscription matching the endpoint
	// and document hash. Returns the number of subscriptions revoked.
	RevokeByEndpoint(ctx context.Context, endpoint, documentHash string) (int64, error)

	// HasActive reports whether the caller's own device endpoint holds an
	// active subscription for the registration. Scoping to the endpoint
	// avoids leaking whether other devices are subscribed.
	HasActive(ctx context.Context, registrationID uuid.UUID, documentHash, endpoint string) (bool, error)
}
