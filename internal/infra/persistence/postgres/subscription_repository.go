package postgres

import (
	"context"

	"empreende/internal/domain/entity"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/repository"
	"empreende/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Upsert creates or refreshes a subscription keyed by
// (registration_id, document_hash, endpoint). Re-subscribing through an
// existing endpoint reactivates the row and refreshes the credential pair
// and display snapshot instead of accumulating duplicates.
func (repo *subscriptionRepository) Upsert(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "registration_id"},
				{Name: "document_hash"},
				{Name: "endpoint"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"p256dh",
				"auth",
				"status",
				"company_name",
				"registration_status",
				"updated_at",
			}),
		}).
		Create(subscriptionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push subscription")
	}

	// On the conflict path the insert's generated ID is discarded and the
	// existing row keeps its identity, so reload by the conflict key.
	var persisted model.PushSubscriptionModel
	if err := repo.db.WithContext(ctx).
		Where("registration_id = ? AND document_hash = ? AND endpoint = ?",
			subscriptionM.RegistrationID, subscriptionM.DocumentHash, subscriptionM.Endpoint).
		First(&persisted).Error; err != nil {
		return errors.Wrap(err, "failed to reload upserted subscription")
	}

	subscription.ID = persisted.ID
	subscription.CreatedAt = persisted.CreatedAt
	subscription.UpdatedAt = persisted.UpdatedAt

	return nil
}

// FindActiveByRegistration retrieves all active subscriptions for a registration.
func (repo *subscriptionRepository) FindActiveByRegistration(ctx context.Context, registrationID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("registration_id = ? AND status = ?", registrationID, string(entity.SubscriptionActive)).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions by registration")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// FindActiveRegistrationIDs returns the distinct registration ids that
// currently have at least one active subscription.
func (repo *subscriptionRepository) FindActiveRegistrationIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Distinct("registration_id").
		Where("registration_id IS NOT NULL AND status = ?", string(entity.SubscriptionActive)).
		Pluck("registration_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active registration ids")
	}

	return ids, nil
}

// Revoke marks a subscription revoked by its ID.
func (repo *subscriptionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("id = ?", id).
		Update("status", string(entity.SubscriptionRevoked))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to revoke subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// RevokeByEndpoint marks revoked every active subscription matching the
// endpoint and document hash. Returns the number of subscriptions revoked.
func (repo *subscriptionRepository) RevokeByEndpoint(ctx context.Context, endpoint, documentHash string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("endpoint = ? AND document_hash = ? AND status = ?",
			endpoint, documentHash, string(entity.SubscriptionActive)).
		Update("status", string(entity.SubscriptionRevoked))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to revoke subscriptions by endpoint")
	}

	return result.RowsAffected, nil
}

// HasActive reports whether the caller's own device endpoint holds an active
// subscription for the registration.
func (repo *subscriptionRepository) HasActive(ctx context.Context, registrationID uuid.UUID, documentHash, endpoint string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("registration_id = ? AND document_hash = ? AND endpoint = ? AND status = ?",
			registrationID, documentHash, endpoint, string(entity.SubscriptionActive)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check active subscription")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM PushSubscriptionModel to a domain PushSubscription entity.
func toSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:                 data.ID,
		RegistrationID:     data.RegistrationID,
		DocumentHash:       data.DocumentHash,
		Endpoint:           data.Endpoint,
		P256dh:             data.P256dh,
		Auth:               data.Auth,
		Status:             entity.SubscriptionStatus(data.Status),
		CompanyName:        data.CompanyName,
		RegistrationStatus: entity.Status(data.RegistrationStatus),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain PushSubscription entity to a GORM PushSubscriptionModel.
func fromSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PushSubscriptionModel{
		ID:                 data.ID,
		RegistrationID:     data.RegistrationID,
		DocumentHash:       data.DocumentHash,
		Endpoint:           data.Endpoint,
		P256dh:             data.P256dh,
		Auth:               data.Auth,
		Status:             string(data.Status),
		CompanyName:        data.CompanyName,
		RegistrationStatus: string(data.RegistrationStatus),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
