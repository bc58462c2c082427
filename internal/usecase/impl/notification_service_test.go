package impl

import (
	"context"
	"testing"
	"time"

	"empreende/internal/domain/entity"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/repository"
	"empreende/internal/domain/service"
	mockRepo "empreende/internal/mocks/repository"
	mockSvc "empreende/internal/mocks/service"
	"empreende/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationService(
	t *testing.T,
	regRepo *mockRepo.MockRegistrationRepository,
	subRepo *mockRepo.MockSubscriptionRepository,
	sender *mockSvc.MockPushSender,
	now time.Time,
) usecase.NotificationUsecase {
	t.Helper()

	svc, err := NewNotificationService(regRepo, subRepo, sender, &fakeClock{now: now}, newTestLogger(), newTestConfig())
	require.NoError(t, err)

	return svc
}

func notifiableRegistration(id uuid.UUID, now time.Time) *entity.Registration {
	return &entity.Registration{
		ID:              id,
		CompanyName:     "Café do Vale",
		StandsQuantity:  2,
		Status:          entity.StatusStandSelection,
		SlotStart:       intPtr(4),
		SlotEnd:         intPtr(9),
		WindowStartedAt: timePtr(now),
		WindowExpiresAt: timePtr(now.Add(time.Hour)),
	}
}

func testSubscription(regID uuid.UUID) *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:             uuid.New(),
		RegistrationID: &regID,
		DocumentHash:   "hash",
		Endpoint:       "https://push.example.com/" + uuid.NewString(),
		P256dh:         "p256dh",
		Auth:           "auth",
		Status:         entity.SubscriptionActive,
	}
}

func TestNotificationService_Dispatch_MixedOutcomes(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc := newNotificationService(t, mockRegRepo, mockSubRepo, mockSender, now)

	ctx := context.Background()
	regID := uuid.New()
	registration := notifiableRegistration(regID, now)

	okSub := testSubscription(regID)
	goneSub := testSubscription(regID)
	flakySub := testSubscription(regID)

	mockRegRepo.EXPECT().
		FindByID(ctx, regID).
		Return(registration, nil)

	mockSubRepo.EXPECT().
		FindActiveByRegistration(ctx, regID).
		Return([]*entity.PushSubscription{okSub, goneSub, flakySub}, nil)

	mockSender.EXPECT().
		Send(ctx, okSub, mock.AnythingOfType("*service.PushPayload")).
		Return(nil)
	mockSender.EXPECT().
		Send(ctx, goneSub, mock.AnythingOfType("*service.PushPayload")).
		Return(errors.Wrap(service.ErrEndpointGone, "push service returned status 410"))
	mockSender.EXPECT().
		Send(ctx, flakySub, mock.AnythingOfType("*service.PushPayload")).
		Return(errors.New("push service returned status 500"))

	// Only the permanently gone endpoint is revoked.
	mockSubRepo.EXPECT().
		Revoke(ctx, goneSub.ID).
		Return(nil)

	mockRegRepo.EXPECT().
		RecordNotifications(ctx, regID, 1, now).
		Return(nil)

	result, err := svc.Dispatch(ctx, &usecase.DispatchInput{RegistrationID: regID})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Delivered)
	assert.Equal(t, 2, result.Failed)
}

func TestNotificationService_Dispatch_NoSubscribers(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc := newNotificationService(t, mockRegRepo, mockSubRepo, mockSender, now)

	ctx := context.Background()
	regID := uuid.New()

	mockRegRepo.EXPECT().
		FindByID(ctx, regID).
		Return(notifiableRegistration(regID, now), nil)

	mockSubRepo.EXPECT().
		FindActiveByRegistration(ctx, regID).
		Return([]*entity.PushSubscription{}, nil)

	// Zero listeners: no sends, no revocations, no counter bump.
	result, err := svc.Dispatch(ctx, &usecase.DispatchInput{RegistrationID: regID})
	require.NoError(t, err)
	assert.Zero(t, result.Delivered)
	assert.Zero(t, result.Failed)
}

func TestNotificationService_Dispatch_RegistrationNotFound(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)

	now := time.Now()
	svc := newNotificationService(t, mockRegRepo, mockSubRepo, mockSender, now)

	ctx := context.Background()
	regID := uuid.New()

	mockRegRepo.EXPECT().
		FindByID(ctx, regID).
		Return(nil, repository.ErrRegistrationNotFound)

	_, err := svc.Dispatch(ctx, &usecase.DispatchInput{RegistrationID: regID})
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}

func TestNotificationService_Dispatch_AllTransientKeepsSubscriptions(t *testing.T) {
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc := newNotificationService(t, mockRegRepo, mockSubRepo, mockSender, now)

	ctx := context.Background()
	regID := uuid.New()
	sub := testSubscription(regID)

	mockRegRepo.EXPECT().
		FindByID(ctx, regID).
		Return(notifiableRegistration(regID, now), nil)

	mockSubRepo.EXPECT().
		FindActiveByRegistration(ctx, regID).
		Return([]*entity.PushSubscription{sub}, nil)

	mockSender.EXPECT().
		Send(ctx, sub, mock.AnythingOfType("*service.PushPayload")).
		Return(errors.New("push service returned status 429"))

	// Nothing delivered: no Revoke, no RecordNotifications.
	result, err := svc.Dispatch(ctx, &usecase.DispatchInput{RegistrationID: regID})
	require.NoError(t, err)
	assert.Zero(t, result.Delivered)
	assert.Equal(t, 1, result.Failed)
}

func TestNotificationService_ComposePayload(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	svc, err := NewNotificationService(
		mockRepo.NewMockRegistrationRepository(t),
		mockRepo.NewMockSubscriptionRepository(t),
		mockSvc.NewMockPushSender(t),
		&fakeClock{now: now},
		newTestLogger(),
		newTestConfig(),
	)
	require.NoError(t, err)

	dispatcher, ok := svc.(*notificationService)
	require.True(t, ok)

	registration := notifiableRegistration(uuid.New(), now)

	t.Run("window opened variant", func(t *testing.T) {
		payload := dispatcher.composePayload(registration, false)
		assert.Equal(t, "Escolha de estandes liberada!", payload.Title)
		assert.Contains(t, payload.Body, "Café do Vale")
		assert.Contains(t, payload.Body, "Estandes disponíveis: 4 a 9.")
		assert.Contains(t, payload.Body, "Escolha 2 estandes.")
		// 13:00 UTC minus three hours in America/Recife.
		assert.Contains(t, payload.Body, "10/03/2026 às 10:00")
	})

	t.Run("reminder variant", func(t *testing.T) {
		payload := dispatcher.composePayload(registration, true)
		assert.Equal(t, "Lembrete: escolha seus estandes", payload.Title)
		assert.Equal(t, "true", payload.Data["reminder"])
	})

	t.Run("singular stand wording", func(t *testing.T) {
		single := notifiableRegistration(uuid.New(), now)
		single.StandsQuantity = 1
		payload := dispatcher.composePayload(single, false)
		assert.Contains(t, payload.Body, "Escolha 1 estande.")
	})
}
