package postgres

import (
	"context"
	"testing"
	"time"

	"empreende/internal/domain/entity"
	"empreende/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubscriptionEntity(registrationID uuid.UUID) *entity.PushSubscription {
	now := time.Now()

	return &entity.PushSubscription{
		ID:                 uuid.New(),
		RegistrationID:     &registrationID,
		DocumentHash:       "a1b2c3d4e5f6a7b8",
		Endpoint:           "https://push.example.com/device-1",
		P256dh:             "BPubKey",
		Auth:               "authSecret",
		Status:             entity.SubscriptionActive,
		CompanyName:        "Doces da Vovó",
		RegistrationStatus: entity.StatusStandSelection,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestSubscriptionRepository_Upsert_KeepsRowIdentity(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	registrationID := uuid.New()

	first := testSubscriptionEntity(registrationID)
	require.NoError(t, repo.Upsert(ctx, first))

	// Re-subscribing through the same endpoint generates a fresh entity ID,
	// but the conflict path must hand back the stored row's identity.
	second := testSubscriptionEntity(registrationID)
	second.P256dh = "BRotatedKey"
	second.Auth = "rotatedSecret"
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.FindActiveByRegistration(ctx, registrationID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, first.ID, stored[0].ID)
	assert.Equal(t, "BRotatedKey", stored[0].P256dh)
	assert.Equal(t, "rotatedSecret", stored[0].Auth)
}

func TestSubscriptionRepository_Upsert_ReactivatesRevoked(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	registrationID := uuid.New()

	subscription := testSubscriptionEntity(registrationID)
	require.NoError(t, repo.Upsert(ctx, subscription))
	require.NoError(t, repo.Revoke(ctx, subscription.ID))

	active, err := repo.FindActiveByRegistration(ctx, registrationID)
	require.NoError(t, err)
	require.Empty(t, active)

	resubscribed := testSubscriptionEntity(registrationID)
	require.NoError(t, repo.Upsert(ctx, resubscribed))

	assert.Equal(t, subscription.ID, resubscribed.ID)

	active, err = repo.FindActiveByRegistration(ctx, registrationID)
	require.NoError(t, err)
	require.Len(t, active, 1)
}

func TestSubscriptionRepository_RevokeByEndpoint(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	registrationID := uuid.New()
	subscription := testSubscriptionEntity(registrationID)
	require.NoError(t, repo.Upsert(ctx, subscription))

	revoked, err := repo.RevokeByEndpoint(ctx, subscription.Endpoint, subscription.DocumentHash)
	require.NoError(t, err)
	assert.Equal(t, int64(1), revoked)

	ids, err := repo.FindActiveRegistrationIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	revoked, err = repo.RevokeByEndpoint(ctx, "https://push.example.com/other", subscription.DocumentHash)
	require.NoError(t, err)
	assert.Zero(t, revoked)
}

func TestSubscriptionRepository_FindActiveRegistrationIDs(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	firstRegistration := uuid.New()
	secondRegistration := uuid.New()

	first := testSubscriptionEntity(firstRegistration)
	require.NoError(t, repo.Upsert(ctx, first))

	second := testSubscriptionEntity(secondRegistration)
	second.DocumentHash = "f6e5d4c3b2a19887"
	second.Endpoint = "https://push.example.com/device-2"
	require.NoError(t, repo.Upsert(ctx, second))

	require.NoError(t, repo.Revoke(ctx, second.ID))

	ids, err := repo.FindActiveRegistrationIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{firstRegistration}, ids)
}

func TestSubscriptionRepository_Revoke_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewSubscriptionRepository(db)

	err := repo.Revoke(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrSubscriptionNotFound)
}
