package impl

import (
	"context"
	"testing"
	"time"

	"empreende/internal/domain/entity"
	"empreende/internal/domain/repository"
	mockRepo "empreende/internal/mocks/repository"
	mockUC "empreende/internal/mocks/usecase"
	"empreende/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderService_Sweep_NoSubscribers(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockNotification := mockUC.NewMockNotificationUsecase(t)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc := NewReminderService(mockRegRepo, mockSubRepo, mockNotification, &fakeClock{now: now}, newTestLogger(), newTestConfig())

	ctx := context.Background()

	mockSubRepo.EXPECT().
		FindActiveRegistrationIDs(ctx).
		Return([]uuid.UUID{}, nil)

	// Without subscribers the sweep never touches registrations.
	result, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Processed)
	assert.Equal(t, 5, result.IntervalMinutes)
}

func TestReminderService_Sweep_QueryFailureAborts(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockNotification := mockUC.NewMockNotificationUsecase(t)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc := NewReminderService(mockRegRepo, mockSubRepo, mockNotification, &fakeClock{now: now}, newTestLogger(), newTestConfig())

	ctx := context.Background()
	subscribedIDs := []uuid.UUID{uuid.New()}

	mockSubRepo.EXPECT().
		FindActiveRegistrationIDs(ctx).
		Return(subscribedIDs, nil)

	mockRegRepo.EXPECT().
		FindDueForReminder(ctx, repository.ReminderQuery{
			Now:             now,
			Interval:        5 * time.Minute,
			Limit:           25,
			RegistrationIDs: subscribedIDs,
		}).
		Return(nil, errors.New("connection refused"))

	_, err := svc.Sweep(ctx)
	assert.Error(t, err)
}

func TestReminderService_Sweep_AccumulatesAndSkipsFailures(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockNotification := mockUC.NewMockNotificationUsecase(t)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc := NewReminderService(mockRegRepo, mockSubRepo, mockNotification, &fakeClock{now: now}, newTestLogger(), newTestConfig())

	ctx := context.Background()

	first := notifiableRegistration(uuid.New(), now.Add(-20*time.Minute))
	second := notifiableRegistration(uuid.New(), now.Add(-15*time.Minute))
	third := notifiableRegistration(uuid.New(), now.Add(-10*time.Minute))
	subscribedIDs := []uuid.UUID{first.ID, second.ID, third.ID}

	mockSubRepo.EXPECT().
		FindActiveRegistrationIDs(ctx).
		Return(subscribedIDs, nil)

	mockRegRepo.EXPECT().
		FindDueForReminder(ctx, repository.ReminderQuery{
			Now:             now,
			Interval:        5 * time.Minute,
			Limit:           25,
			RegistrationIDs: subscribedIDs,
		}).
		Return([]*entity.Registration{first, second, third}, nil)

	mockNotification.EXPECT().
		Dispatch(ctx, &usecase.DispatchInput{RegistrationID: first.ID, Reminder: true}).
		Return(&usecase.DispatchResult{Delivered: 2, Failed: 1}, nil)

	// The middle dispatch blows up; the sweep logs it and moves on.
	mockNotification.EXPECT().
		Dispatch(ctx, &usecase.DispatchInput{RegistrationID: second.ID, Reminder: true}).
		Return(nil, errors.New("push gateway unavailable"))

	mockNotification.EXPECT().
		Dispatch(ctx, &usecase.DispatchInput{RegistrationID: third.ID, Reminder: true}).
		Return(&usecase.DispatchResult{Delivered: 1}, nil)

	result, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 3, result.Delivered)
	assert.Equal(t, 1, result.Failed)
}
