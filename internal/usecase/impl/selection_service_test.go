package impl

import (
	"context"
	"testing"
	"time"

	"empreende/internal/domain/entity"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/repository"
	mockRepo "empreende/internal/mocks/repository"
	"empreende/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openWindowInput(id uuid.UUID, slotStart, slotEnd int) *usecase.OpenWindowInput {
	return &usecase.OpenWindowInput{
		RegistrationID: id,
		SlotStart:      slotStart,
		SlotEnd:        slotEnd,
	}
}

func submitInput(id uuid.UUID, choices []int) *usecase.SubmitChoicesInput {
	return &usecase.SubmitChoicesInput{
		RegistrationID: id,
		Choices:        choices,
	}
}

func activeSelectionRegistration(id uuid.UUID, now time.Time) *entity.Registration {
	return &entity.Registration{
		ID:              id,
		Document:        "12345678000195",
		CompanyName:     "Doces da Serra",
		StandsQuantity:  2,
		Status:          entity.StatusStandSelection,
		SlotStart:       intPtr(1),
		SlotEnd:         intPtr(6),
		WindowStartedAt: timePtr(now.Add(-10 * time.Minute)),
		WindowExpiresAt: timePtr(now.Add(50 * time.Minute)),
	}
}

func TestSelectionService_OpenWindow(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: now}
	service := NewSelectionService(mockRegRepo, clock, newTestConfig())

	ctx := context.Background()
	regID := uuid.New()

	existing := &entity.Registration{
		ID:             regID,
		Status:         entity.StatusApproved,
		StandsQuantity: 2,
		// Leftovers from a previous aborted window.
		Choices:            nil,
		NotificationsCount: 3,
		LastNotificationAt: timePtr(now.Add(-24 * time.Hour)),
	}

	mockRegRepo.EXPECT().
		FindByID(ctx, regID).
		Return(existing, nil)

	mockRegRepo.EXPECT().
		OpenWindow(ctx, regID, repository.WindowUpdate{
			Status:          entity.StatusStandSelection,
			SlotStart:       3,
			SlotEnd:         8,
			WindowStartedAt: now,
			WindowExpiresAt: now.Add(time.Hour),
		}).
		Return(nil)

	registration, err := service.OpenWindow(ctx, openWindowInput(regID, 3, 8))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusStandSelection, registration.Status)
	assert.Equal(t, 3, *registration.SlotStart)
	assert.Equal(t, 8, *registration.SlotEnd)
	assert.Equal(t, now, *registration.WindowStartedAt)
	assert.Equal(t, now.Add(time.Hour), *registration.WindowExpiresAt)
	assert.Empty(t, registration.Choices)
	assert.Nil(t, registration.SubmittedAt)
	assert.Nil(t, registration.LastNotificationAt)
	assert.Zero(t, registration.NotificationsCount)
	assert.Equal(t, entity.PhaseActive, registration.SelectionPhase(now))
}

func TestSelectionService_OpenWindow_NotFound(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewSelectionService(mockRegRepo, &fakeClock{now: time.Now()}, newTestConfig())

	ctx := context.Background()
	regID := uuid.New()

	mockRegRepo.EXPECT().
		FindByID(ctx, regID).
		Return(nil, repository.ErrRegistrationNotFound)

	_, err := service.OpenWindow(ctx, openWindowInput(regID, 1, 4))
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}

func TestSelectionService_SubmitChoices(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("valid submission serializes ascending and completes", func(t *testing.T) {
		mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
		service := NewSelectionService(mockRegRepo, &fakeClock{now: now}, newTestConfig())
		regID := uuid.New()

		mockRegRepo.EXPECT().
			FindByID(ctx, regID).
			Return(activeSelectionRegistration(regID, now), nil)

		mockRegRepo.EXPECT().
			FinalizeChoices(ctx, regID, repository.FinalizeUpdate{
				SerializedChoices: "1,5",
				SubmittedAt:       now,
				Status:            entity.StatusConfirmed,
			}).
			Return(nil)

		registration, err := service.SubmitChoices(ctx, submitInput(regID, []int{5, 1}))
		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, registration.Status)
		assert.Equal(t, []int{1, 5}, registration.Choices)
		assert.Equal(t, now, *registration.SubmittedAt)
		assert.Equal(t, now, *registration.WindowExpiresAt)
		assert.Equal(t, entity.PhaseCompleted, registration.SelectionPhase(now))
	})

	t.Run("count mismatch rejects without mutation", func(t *testing.T) {
		mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
		service := NewSelectionService(mockRegRepo, &fakeClock{now: now}, newTestConfig())
		regID := uuid.New()

		mockRegRepo.EXPECT().
			FindByID(ctx, regID).
			Return(activeSelectionRegistration(regID, now), nil)

		_, err := service.SubmitChoices(ctx, submitInput(regID, []int{1}))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidChoiceCount)
	})

	t.Run("duplicate choices reject without mutation", func(t *testing.T) {
		mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
		service := NewSelectionService(mockRegRepo, &fakeClock{now: now}, newTestConfig())
		regID := uuid.New()

		mockRegRepo.EXPECT().
			FindByID(ctx, regID).
			Return(activeSelectionRegistration(regID, now), nil)

		_, err := service.SubmitChoices(ctx, submitInput(regID, []int{3, 3}))
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateChoices)
	})

	t.Run("choice outside the slot range rejects", func(t *testing.T) {
		mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
		service := NewSelectionService(mockRegRepo, &fakeClock{now: now}, newTestConfig())
		regID := uuid.New()

		mockRegRepo.EXPECT().
			FindByID(ctx, regID).
			Return(activeSelectionRegistration(regID, now), nil)

		_, err := service.SubmitChoices(ctx, submitInput(regID, []int{1, 99}))
		assert.ErrorIs(t, err, domainerrors.ErrChoiceOutOfRange)
	})

	t.Run("expired window rejects", func(t *testing.T) {
		mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
		late := now.Add(2 * time.Hour)
		service := NewSelectionService(mockRegRepo, &fakeClock{now: late}, newTestConfig())
		regID := uuid.New()

		mockRegRepo.EXPECT().
			FindByID(ctx, regID).
			Return(activeSelectionRegistration(regID, now), nil)

		_, err := service.SubmitChoices(ctx, submitInput(regID, []int{1, 2}))
		assert.ErrorIs(t, err, domainerrors.ErrSelectionClosed)
	})

	t.Run("already submitted maps the finalize guard", func(t *testing.T) {
		mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
		service := NewSelectionService(mockRegRepo, &fakeClock{now: now}, newTestConfig())
		regID := uuid.New()

		mockRegRepo.EXPECT().
			FindByID(ctx, regID).
			Return(activeSelectionRegistration(regID, now), nil)

		mockRegRepo.EXPECT().
			FinalizeChoices(ctx, regID, repository.FinalizeUpdate{
				SerializedChoices: "1,2",
				SubmittedAt:       now,
				Status:            entity.StatusConfirmed,
			}).
			Return(repository.ErrAlreadySubmitted)

		_, err := service.SubmitChoices(ctx, submitInput(regID, []int{1, 2}))
		assert.ErrorIs(t, err, domainerrors.ErrAlreadySubmitted)
	})
}

// TestSelectionService_WindowLifecycle walks the window through open, active
// submission attempt at T0 and the state after the deadline passes.
func TestSelectionService_WindowLifecycle(t *testing.T) {
	t0 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()
	regID := uuid.New()
	clock := &fakeClock{now: t0}

	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	service := NewSelectionService(mockRegRepo, clock, newTestConfig())

	mockRegRepo.EXPECT().
		FindByID(ctx, regID).
		Return(&entity.Registration{ID: regID, Status: entity.StatusApproved, StandsQuantity: 1}, nil)
	mockRegRepo.EXPECT().
		OpenWindow(ctx, regID, repository.WindowUpdate{
			Status:          entity.StatusStandSelection,
			SlotStart:       1,
			SlotEnd:         3,
			WindowStartedAt: t0,
			WindowExpiresAt: t0.Add(time.Hour),
		}).
		Return(nil)

	registration, err := service.OpenWindow(ctx, openWindowInput(regID, 1, 3))
	require.NoError(t, err)

	assert.Equal(t, entity.PhaseActive, registration.SelectionPhase(t0))
	// Exactly at the deadline the window is still open.
	assert.Equal(t, entity.PhaseActive, registration.SelectionPhase(t0.Add(time.Hour)))
	// One minute past it has expired.
	assert.Equal(t, entity.PhaseExpired, registration.SelectionPhase(t0.Add(61*time.Minute)))
}
