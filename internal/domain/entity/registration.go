// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status is the workflow status of an exhibitor registration.
type Status string

const (
	// StatusPendingReview is the initial status after sign-up.
	StatusPendingReview Status = "pending_review"
	// StatusApproved means an admin accepted the registration.
	StatusApproved Status = "approved"
	// StatusStandSelection means a stand-selection window is (or was) open.
	StatusStandSelection Status = "stand_selection"
	// StatusConfirmed means the exhibitor submitted their stand choices.
	StatusConfirmed Status = "confirmed"
	// StatusRejected means an admin declined the registration.
	StatusRejected Status = "rejected"
	// StatusCancelled means the registration was withdrawn. Registrations are
	// never physically deleted; cancellation is a status, not a removal.
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known workflow statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPendingReview, StatusApproved, StatusStandSelection,
		StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}

	return false
}

// Registration is an exhibitor's application record, the root entity of the
// stand-selection workflow.
type Registration struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the registration.
	Document       string    `json:"document"`        // Normalized (digits-only) CNPJ/CPF used as the lookup key.
	CompanyName    string    `json:"company_name"`    // Display name of the exhibitor.
	ContactEmail   string    `json:"contact_email"`   // Contact e-mail supplied at sign-up.
	ContactPhone   string    `json:"contact_phone"`   // Contact phone supplied at sign-up.
	Segment        string    `json:"segment"`         // Business segment declared at sign-up.
	StandsQuantity int       `json:"stands_quantity"` // Declared number of stands; fixed at creation.
	Status         Status    `json:"status"`          // Current workflow status.

	// Stand-selection window fields. SlotStart/SlotEnd and the two window
	// timestamps are each both nil or both set.
	SlotStart          *int       `json:"slot_start"`           // First assignable stand number (inclusive).
	SlotEnd            *int       `json:"slot_end"`             // Last assignable stand number (inclusive).
	WindowStartedAt    *time.Time `json:"window_started_at"`    // When the current window was opened.
	WindowExpiresAt    *time.Time `json:"window_expires_at"`    // When the current window closes.
	Choices            []int      `json:"choices"`              // Submitted stand numbers, ascending; empty until submitted.
	SubmittedAt        *time.Time `json:"submitted_at"`         // When the choices were submitted.
	NotificationsCount int        `json:"notifications_count"`  // Total push notifications delivered for this window history.
	LastNotificationAt *time.Time `json:"last_notification_at"` // When the last notification was delivered.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailableStands returns the ordered set of stand numbers assignable during
// the current window. Empty when no slot bounds are set.
func (r *Registration) AvailableStands() []int {
	return StandRange(r.SlotStart, r.SlotEnd)
}

// SelectionPhase derives the current phase of the stand-selection workflow
// from the persisted fields and the given wall-clock time. See ComputePhase.
func (r *Registration) SelectionPhase(now time.Time) SelectionPhase {
	return ComputePhase(r, now)
}
