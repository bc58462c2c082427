// Package impl contains the application-service implementations.
package impl

import (
	"context"
	"time"

	"empreende/config"
	"empreende/internal/domain/entity"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/repository"
	"empreende/internal/domain/service"
	"empreende/internal/usecase"

	"github.com/pkg/errors"
)

type selectionService struct {
	registrationRepo repository.RegistrationRepository
	clock            service.Clock
	cfg              *config.Config
}

// NewSelectionService creates the reservation-window manager.
func NewSelectionService(
	registrationRepo repository.RegistrationRepository,
	clock service.Clock,
	cfg *config.Config,
) usecase.SelectionUsecase {
	return &selectionService{
		registrationRepo: registrationRepo,
		clock:            clock,
		cfg:              cfg,
	}
}

// OpenWindow opens a time-boxed selection window. Re-opening discards any
// prior incomplete selection and restarts the reminder cadence from zero.
func (s *selectionService) OpenWindow(ctx context.Context, input *usecase.OpenWindowInput) (*entity.Registration, error) {
	registration, err := s.registrationRepo.FindByID(ctx, input.RegistrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration")
	}

	duration := input.Duration
	if duration <= 0 {
		duration = s.cfg.Reminder.WindowDuration
	}

	status := input.Status
	if status == "" {
		status = entity.StatusStandSelection
	}
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	now := s.clock.Now()
	update := repository.WindowUpdate{
		Status:          status,
		SlotStart:       input.SlotStart,
		SlotEnd:         input.SlotEnd,
		WindowStartedAt: now,
		WindowExpiresAt: now.Add(duration),
	}

	if err := s.registrationRepo.OpenWindow(ctx, input.RegistrationID, update); err != nil {
		return nil, errors.Wrap(err, "failed to open selection window")
	}

	registration.Status = status
	registration.SlotStart = &update.SlotStart
	registration.SlotEnd = &update.SlotEnd
	registration.WindowStartedAt = &update.WindowStartedAt
	registration.WindowExpiresAt = &update.WindowExpiresAt
	registration.Choices = nil
	registration.SubmittedAt = nil
	registration.LastNotificationAt = nil
	registration.NotificationsCount = 0
	registration.UpdatedAt = now

	return registration, nil
}

// SubmitChoices validates and finalizes a submitted choice. The window expiry
// collapses to the submission instant so the phase machine reports completed
// instead of a dangling future deadline.
func (s *selectionService) SubmitChoices(ctx context.Context, input *usecase.SubmitChoicesInput) (*entity.Registration, error) {
	registration, err := s.registrationRepo.FindByID(ctx, input.RegistrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration")
	}

	now := s.clock.Now()
	if err := validateChoices(registration, input.Choices, now); err != nil {
		return nil, err
	}

	status := input.FinalizeStatus
	if status == "" {
		status = entity.StatusConfirmed
	}
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	update := repository.FinalizeUpdate{
		SerializedChoices: entity.SerializeChoices(input.Choices),
		SubmittedAt:       now,
		Status:            status,
	}

	if err := s.registrationRepo.FinalizeChoices(ctx, input.RegistrationID, update); err != nil {
		if errors.Is(err, repository.ErrAlreadySubmitted) {
			return nil, domainerrors.ErrAlreadySubmitted
		}

		return nil, errors.Wrap(err, "failed to finalize choices")
	}

	choices, err := entity.ParseChoices(update.SerializedChoices)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse serialized choices")
	}

	registration.Status = status
	registration.Choices = choices
	registration.SubmittedAt = &update.SubmittedAt
	registration.WindowExpiresAt = &update.SubmittedAt
	registration.UpdatedAt = now

	return registration, nil
}

// validateChoices rejects malformed or out-of-window submissions before any
// mutation.
func validateChoices(registration *entity.Registration, choices []int, now time.Time) error {
	switch registration.SelectionPhase(now) {
	case entity.PhaseActive:
		// Window open, proceed.
	case entity.PhaseCompleted:
		return domainerrors.ErrAlreadySubmitted
	default:
		return domainerrors.ErrSelectionClosed
	}

	if len(choices) != registration.StandsQuantity {
		return domainerrors.ErrInvalidChoiceCount
	}

	seen := make(map[int]struct{}, len(choices))
	for _, n := range choices {
		if _, dup := seen[n]; dup {
			return domainerrors.ErrDuplicateChoices
		}
		seen[n] = struct{}{}
	}

	available := registration.AvailableStands()
	if len(available) > 0 {
		inRange := make(map[int]struct{}, len(available))
		for _, n := range available {
			inRange[n] = struct{}{}
		}
		for _, n := range choices {
			if _, ok := inRange[n]; !ok {
				return domainerrors.ErrChoiceOutOfRange
			}
		}
	}

	return nil
}
