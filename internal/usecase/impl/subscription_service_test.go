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
	"empreende/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://push.example.com/device-1"

func TestSubscriptionService_Subscribe(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	cfg := newTestConfig()
	svc := NewSubscriptionService(mockSubRepo, mockRegRepo, cfg)

	ctx := context.Background()
	regID := uuid.New()
	registration := &entity.Registration{
		ID:          regID,
		CompanyName: "Doces da Serra",
		Status:      entity.StatusApproved,
	}

	mockRegRepo.EXPECT().
		FindByDocument(ctx, "12345678000190").
		Return(registration, nil)

	mockSubRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Run(func(_ context.Context, subscription *entity.PushSubscription) {
			assert.Equal(t, regID, *subscription.RegistrationID)
			assert.Equal(t, util.HashDocument("12345678000190", cfg.Security.DocumentHashSalt), subscription.DocumentHash)
			assert.Equal(t, testEndpoint, subscription.Endpoint)
			assert.Equal(t, entity.SubscriptionActive, subscription.Status)
			assert.Equal(t, "Doces da Serra", subscription.CompanyName)
			assert.Equal(t, entity.StatusApproved, subscription.RegistrationStatus)
		}).
		Return(nil)

	subscription, err := svc.Subscribe(ctx, &usecase.SubscribeInput{
		Document: "12.345.678/0001-90",
		Endpoint: testEndpoint,
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, subscription.ID)
}

func TestSubscriptionService_Subscribe_InvalidDocument(t *testing.T) {
	svc := NewSubscriptionService(
		mockRepo.NewMockSubscriptionRepository(t),
		mockRepo.NewMockRegistrationRepository(t),
		newTestConfig(),
	)

	_, err := svc.Subscribe(context.Background(), &usecase.SubscribeInput{
		Document: "not-a-document",
		Endpoint: testEndpoint,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDocument)
}

func TestSubscriptionService_Subscribe_UnknownRegistration(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	svc := NewSubscriptionService(mockSubRepo, mockRegRepo, newTestConfig())

	ctx := context.Background()

	mockRegRepo.EXPECT().
		FindByDocument(ctx, "12345678000190").
		Return(nil, repository.ErrRegistrationNotFound)

	_, err := svc.Subscribe(ctx, &usecase.SubscribeInput{
		Document: "12345678000190",
		Endpoint: testEndpoint,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	cfg := newTestConfig()
	svc := NewSubscriptionService(mockSubRepo, mockRegRepo, cfg)

	ctx := context.Background()
	hash := util.HashDocument("12345678000190", cfg.Security.DocumentHashSalt)

	mockSubRepo.EXPECT().
		RevokeByEndpoint(ctx, testEndpoint, hash).
		Return(int64(1), nil)

	err := svc.Unsubscribe(ctx, &usecase.UnsubscribeInput{
		Document: "12.345.678/0001-90",
		Endpoint: testEndpoint,
	})
	assert.NoError(t, err)
}

func TestSubscriptionService_Unsubscribe_NotFound(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

	svc := NewSubscriptionService(mockSubRepo, mockRegRepo, newTestConfig())

	ctx := context.Background()

	mockSubRepo.EXPECT().
		RevokeByEndpoint(ctx, testEndpoint, mock.AnythingOfType("string")).
		Return(int64(0), nil)

	err := svc.Unsubscribe(ctx, &usecase.UnsubscribeInput{
		Document: "12345678000190",
		Endpoint: testEndpoint,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_HasActiveSubscription(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
		mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

		cfg := newTestConfig()
		svc := NewSubscriptionService(mockSubRepo, mockRegRepo, cfg)

		ctx := context.Background()
		regID := uuid.New()
		hash := util.HashDocument("12345678000190", cfg.Security.DocumentHashSalt)

		mockRegRepo.EXPECT().
			FindByDocument(ctx, "12345678000190").
			Return(&entity.Registration{ID: regID, CreatedAt: time.Now()}, nil)

		mockSubRepo.EXPECT().
			HasActive(ctx, regID, hash, testEndpoint).
			Return(true, nil)

		active, err := svc.HasActiveSubscription(ctx, "12.345.678/0001-90", testEndpoint)
		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("unknown document answers false without error", func(t *testing.T) {
		mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
		mockRegRepo := mockRepo.NewMockRegistrationRepository(t)

		svc := NewSubscriptionService(mockSubRepo, mockRegRepo, newTestConfig())

		ctx := context.Background()

		mockRegRepo.EXPECT().
			FindByDocument(ctx, "12345678000190").
			Return(nil, repository.ErrRegistrationNotFound)

		active, err := svc.HasActiveSubscription(ctx, "12345678000190", testEndpoint)
		require.NoError(t, err)
		assert.False(t, active)
	})
}
