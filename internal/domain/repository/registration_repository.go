// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"empreende/internal/domain/entity"
	"empreende/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for registration persistence.
var (
	// ErrRegistrationNotFound is returned when a registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrDuplicateRegistration is returned when a document is already registered.
	ErrDuplicateRegistration = errors.New("registration already exists")
	// ErrAlreadySubmitted is returned when a conditional finalize matches no
	// row because choices were already submitted for the current window.
	ErrAlreadySubmitted = errors.New("choices already submitted")
)

// WindowUpdate carries the fields set when a selection window is opened.
// Opening a window always discards any prior incomplete selection: choices,
// submittedAt and lastNotificationAt are cleared and the counter reset.
type WindowUpdate struct {
	Status          entity.Status
	SlotStart       int
	SlotEnd         int
	WindowStartedAt time.Time
	WindowExpiresAt time.Time
}

// FinalizeUpdate carries the fields set when choices are submitted. The window
// expiry is collapsed to the submission instant so the phase machine reports a
// terminal state instead of a dangling future deadline.
type FinalizeUpdate struct {
	SerializedChoices string
	SubmittedAt       time.Time
	Status            entity.Status
}

// ReminderQuery filters registrations due for a reminder sweep.
type ReminderQuery struct {
	Now time.Time
	// Interval is the minimum age of the last notification.
	Interval time.Duration
	// Limit caps the batch; ordering is lastNotificationAt ascending with
	// nulls first so never-notified registrations are served before any
	// already-reminded one.
	Limit int
	// RegistrationIDs restricts the query to registrations that have at least
	// one active subscription. Empty means no candidates.
	RegistrationIDs []uuid.UUID
}

// RegistrationRepository defines the interface for registration-related
// database operations.
type RegistrationRepository interface {
	// Create persists a new registration.
	Create(ctx context.Context, registration *entity.Registration) error

	// FindByID retrieves a registration by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error)

	// FindByDocument retrieves a registration by its normalized document.
	FindByDocument(ctx context.Context, document string) (*entity.Registration, error)

	// List retrieves registrations, optionally filtered by status, newest first.
	List(ctx context.Context, status *entity.Status, limit, offset int) ([]*entity.Registration, error)

	// UpdateStatus changes the workflow status of a registration.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error

	// OpenWindow applies a WindowUpdate and unconditionally clears choices,
	// submittedAt, lastNotificationAt and the notification counter.
	OpenWindow(ctx context.Context, id uuid.UUID, update WindowUpdate) error

	// FinalizeChoices applies a FinalizeUpdate guarded by submitted_at IS NULL.
	// Returns ErrAlreadySubmitted when the guard matches no row.
	FinalizeChoices(ctx context.Context, id uuid.UUID, update FinalizeUpdate) error

	// RecordNotifications atomically bumps the notification counter by the
	// delivered count and stamps lastNotificationAt.
	RecordNotifications(ctx context.Context, id uuid.UUID, delivered int, at time.Time) error

	// FindDueForReminder returns registrations with an open, unexpired,
	// unclaimed window whose last reminder is older than the interval.
	FindDueForReminder(ctx context.Context, query ReminderQuery) ([]*entity.Registration, error)
}
