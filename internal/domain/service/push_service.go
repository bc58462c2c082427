// Package service defines interfaces for infrastructure collaborators.
package service

import (
	"context"

	"empreende/internal/domain/entity"
	"empreende/internal/errors"
)

// ErrEndpointGone marks a delivery failure where the push service reported the
// endpoint permanently invalid (HTTP 404/410 class). The subscription must be
// revoked; any other failure is transient and the subscription stays active.
// Transport implementations wrap their vendor-specific signals into this
// sentinel so callers never inspect status codes.
var ErrEndpointGone = errors.New("push endpoint permanently gone")

// PushPayload is the structured message delivered to a subscription.
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Icon  string            `json:"icon,omitempty"`
	Badge string            `json:"badge,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushSender delivers one payload to one subscription endpoint.
type PushSender interface {
	// Send attempts a single delivery. A nil error means the push service
	// accepted the message. Failures are classified: errors matching
	// ErrEndpointGone are permanent, everything else is transient.
	Send(ctx context.Context, subscription *entity.PushSubscription, payload *PushPayload) error
}

// IsPermanent reports whether a delivery failure means the endpoint must be
// forgotten.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrEndpointGone)
}
