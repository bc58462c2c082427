package usecase

import (
	"context"
	"time"

	"empreende/internal/domain/entity"

	"github.com/google/uuid"
)

// OpenWindowInput opens a time-boxed stand-selection window. Exclusivity of
// stand numbers across registrations is the administrator's responsibility;
// the slot bounds are taken as given.
type OpenWindowInput struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	SlotStart      int       `json:"slot_start" validate:"required,gte=1"`
	SlotEnd        int       `json:"slot_end" validate:"required,gte=1"`
	// Duration defaults to the configured window duration when zero.
	Duration time.Duration `json:"duration"`
	// Status defaults to stand_selection when empty.
	Status entity.Status `json:"status"`
}

// SubmitChoicesInput finalizes a registration's stand choice.
type SubmitChoicesInput struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	Choices        []int     `json:"choices" validate:"required,min=1"`
	// FinalizeStatus defaults to confirmed when empty.
	FinalizeStatus entity.Status `json:"finalize_status"`
}

// SelectionUsecase manages the reservation window lifecycle.
type SelectionUsecase interface {
	// OpenWindow sets the slot bounds and window timestamps and discards any
	// prior incomplete selection. Reminder cadence restarts fresh.
	OpenWindow(ctx context.Context, input *OpenWindowInput) (*entity.Registration, error)

	// SubmitChoices validates count and distinctness against the declared
	// stands quantity, persists the canonical serialized choices, collapses
	// the window expiry and advances the status.
	SubmitChoices(ctx context.Context, input *SubmitChoicesInput) (*entity.Registration, error)
}
