package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DispatchInput selects the registration to notify and the message variant.
type DispatchInput struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	// Reminder picks the reminder wording instead of the window-opened one.
	Reminder bool `json:"reminder"`
}

// DispatchResult counts deliveries for one registration fan-out. Partial
// failure is a result, never an error.
type DispatchResult struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

// SweepResult summarizes one reminder sweep.
type SweepResult struct {
	Processed       int `json:"processed"`
	Delivered       int `json:"delivered"`
	Failed          int `json:"failed"`
	IntervalMinutes int `json:"intervalMinutes"`
}

// NotificationUsecase composes and delivers push notifications for one
// registration.
type NotificationUsecase interface {
	// Dispatch delivers to every active subscription of the registration,
	// concurrently and independently. Endpoints reported permanently gone are
	// revoked; transient failures leave the subscription active. When at
	// least one delivery succeeds the registration's notification counter and
	// timestamp are updated.
	Dispatch(ctx context.Context, input *DispatchInput) (*DispatchResult, error)
}

// ReminderUsecase is the periodic sweep entry point, fired by an external
// scheduler.
type ReminderUsecase interface {
	// Sweep finds registrations with an open, unexpired, unclaimed window due
	// for a reminder and dispatches to each sequentially. A query failure
	// aborts the sweep; a dispatch failure for one registration does not.
	Sweep(ctx context.Context) (*SweepResult, error)
}
