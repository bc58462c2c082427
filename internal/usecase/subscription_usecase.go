package usecase

import (
	"context"

	"empreende/internal/domain/entity"
)

// SubscribeInput registers one device endpoint for a registration's hashed
// identity. The raw document is hashed before anything is stored.
type SubscribeInput struct {
	Document string `json:"document" validate:"required"`
	Endpoint string `json:"endpoint" validate:"required,url"`
	P256dh   string `json:"p256dh" validate:"required"`
	Auth     string `json:"auth" validate:"required"`
}

// UnsubscribeInput revokes the caller's device endpoint. The client drops its
// local subscription first, best effort; a local failure must not block the
// server-side revocation, so this call carries no success flag from the device.
type UnsubscribeInput struct {
	Document string `json:"document" validate:"required"`
	Endpoint string `json:"endpoint" validate:"required,url"`
}

// SubscriptionUsecase is the registry of device push endpoints.
type SubscriptionUsecase interface {
	// Subscribe upserts the subscription and refreshes its display snapshot.
	Subscribe(ctx context.Context, input *SubscribeInput) (*entity.PushSubscription, error)

	// Unsubscribe marks the caller's subscription revoked.
	Unsubscribe(ctx context.Context, input *UnsubscribeInput) error

	// HasActiveSubscription reports whether the calling device endpoint holds
	// an active subscription for the document's registration, without leaking
	// other devices' state.
	HasActiveSubscription(ctx context.Context, document, endpoint string) (bool, error)
}
