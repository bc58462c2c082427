// Package usecase defines the application-service interfaces and their
// input/output types.
package usecase

import (
	"context"

	"empreende/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput is the exhibitor sign-up payload. The document may arrive
// formatted; it is normalized before persisting.
type RegisterInput struct {
	Document       string `json:"document" validate:"required"`
	CompanyName    string `json:"company_name" validate:"required"`
	ContactEmail   string `json:"contact_email" validate:"required,email"`
	ContactPhone   string `json:"contact_phone"`
	Segment        string `json:"segment"`
	StandsQuantity int    `json:"stands_quantity" validate:"required,gte=1"`
}

// RegistrationView is the public status-lookup projection: the registration
// snapshot plus the derived selection phase and assignable stand range.
type RegistrationView struct {
	Registration *entity.Registration  `json:"registration"`
	Phase        entity.SelectionPhase `json:"phase"`
	Stands       []int                 `json:"stands"`
}

// RegistrationUsecase covers exhibitor sign-up, status lookup and the admin
// dashboard operations.
type RegistrationUsecase interface {
	// Register creates a new registration in pending review.
	Register(ctx context.Context, input *RegisterInput) (*entity.Registration, error)

	// LookupByDocument normalizes the document and returns the matching
	// registration with its derived phase. A miss is a NotFound, not a fault.
	LookupByDocument(ctx context.Context, document string) (*RegistrationView, error)

	// List returns registrations for the dashboard, optionally filtered by
	// status, newest first.
	List(ctx context.Context, status *entity.Status, limit, offset int) ([]*entity.Registration, error)

	// UpdateStatus applies an admin status change (approve, reject, cancel).
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.Registration, error)

	// StatusQR renders the QR code pointing at the public status page.
	StatusQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
