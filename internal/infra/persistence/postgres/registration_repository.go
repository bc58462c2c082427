package postgres

import (
	"context"
	"time"

	"empreende/internal/domain/entity"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/repository"
	"empreende/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// Create persists a new registration.
func (repo *registrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	registrationM := fromRegistrationDomain(registration)

	if err := repo.db.WithContext(ctx).Create(registrationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRegistration
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create registration")
	}

	// Update the entity with generated values
	registration.ID = registrationM.ID
	registration.CreatedAt = registrationM.CreatedAt
	registration.UpdatedAt = registrationM.UpdatedAt

	return nil
}

// FindByID retrieves a registration by its unique ID.
func (repo *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	var registrationM model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by ID")
	}

	return toRegistrationDomain(&registrationM), nil
}

// FindByDocument retrieves a registration by its normalized document.
func (repo *registrationRepository) FindByDocument(ctx context.Context, document string) (*entity.Registration, error) {
	var registrationM model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("document = ?", document).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by document")
	}

	return toRegistrationDomain(&registrationM), nil
}

// List retrieves registrations, optionally filtered by status, newest first.
func (repo *registrationRepository) List(ctx context.Context, status *entity.Status, limit, offset int) ([]*entity.Registration, error) {
	var registrationModels []*model.RegistrationModel

	query := repo.db.WithContext(ctx).Model(&model.RegistrationModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.
		Order("created_at DESC").
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list registrations")
	}

	registrations := make([]*entity.Registration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, toRegistrationDomain(registrationM))
	}

	return registrations, nil
}

// UpdateStatus changes the workflow status of a registration.
func (repo *registrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update registration status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// OpenWindow applies a WindowUpdate and unconditionally clears choices,
// submittedAt, lastNotificationAt and the notification counter, so reopening
// a window always starts from a clean selection state.
func (repo *registrationRepository) OpenWindow(ctx context.Context, id uuid.UUID, update repository.WindowUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":               string(update.Status),
			"slot_start":           update.SlotStart,
			"slot_end":             update.SlotEnd,
			"window_started_at":    update.WindowStartedAt,
			"window_expires_at":    update.WindowExpiresAt,
			"choices":              "",
			"submitted_at":         nil,
			"notifications_count":  0,
			"last_notification_at": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to open selection window")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// FinalizeChoices applies a FinalizeUpdate guarded by submitted_at IS NULL.
// The guard makes concurrent submissions first-writer-wins at the database
// level; losers observe ErrAlreadySubmitted.
func (repo *registrationRepository) FinalizeChoices(ctx context.Context, id uuid.UUID, update repository.FinalizeUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ? AND submitted_at IS NULL", id).
		Updates(map[string]any{
			"choices":           update.SerializedChoices,
			"submitted_at":      update.SubmittedAt,
			"window_expires_at": update.SubmittedAt,
			"status":            string(update.Status),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to finalize choices")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from a lost race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.RegistrationModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to finalize choices")
		}
		if count == 0 {
			return repository.ErrRegistrationNotFound
		}

		return repository.ErrAlreadySubmitted
	}

	return nil
}

// RecordNotifications atomically bumps the notification counter by the
// delivered count and stamps lastNotificationAt.
func (repo *registrationRepository) RecordNotifications(ctx context.Context, id uuid.UUID, delivered int, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"notifications_count":  gorm.Expr("notifications_count + ?", delivered),
			"last_notification_at": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record notifications")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// FindDueForReminder returns registrations with an open, unexpired, unclaimed
// window whose last reminder is older than the interval. Never-notified rows
// sort first so a fresh window is reminded before any already-nagged one.
func (repo *registrationRepository) FindDueForReminder(ctx context.Context, query repository.ReminderQuery) ([]*entity.Registration, error) {
	if len(query.RegistrationIDs) == 0 {
		return []*entity.Registration{}, nil
	}

	var registrationModels []*model.RegistrationModel

	cutoff := query.Now.Add(-query.Interval)

	q := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id IN ?", query.RegistrationIDs).
		Where("status = ?", string(entity.StatusStandSelection)).
		Where("choices = ''").
		Where("slot_start IS NOT NULL AND slot_end IS NOT NULL").
		Where("window_started_at IS NOT NULL AND window_started_at <= ?", query.Now).
		Where("window_expires_at IS NOT NULL AND window_expires_at > ?", query.Now).
		Where("last_notification_at IS NULL OR last_notification_at <= ?", cutoff).
		Order("last_notification_at ASC NULLS FIRST")
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	if err := q.Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find registrations due for reminder")
	}

	registrations := make([]*entity.Registration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, toRegistrationDomain(registrationM))
	}

	return registrations, nil
}

// --- Mapper Functions ---

// toRegistrationDomain converts a GORM RegistrationModel to a domain Registration entity.
func toRegistrationDomain(data *model.RegistrationModel) *entity.Registration {
	if data == nil {
		return nil
	}

	// The stored choices column is always the canonical ascending CSV written
	// by FinalizeChoices, so a parse failure here means manual tampering; the
	// row is surfaced with empty choices rather than failing the read.
	choices, err := entity.ParseChoices(data.Choices)
	if err != nil {
		choices = nil
	}

	return &entity.Registration{
		ID:                 data.ID,
		Document:           data.Document,
		CompanyName:        data.CompanyName,
		ContactEmail:       data.ContactEmail,
		ContactPhone:       data.ContactPhone,
		Segment:            data.Segment,
		StandsQuantity:     data.StandsQuantity,
		Status:             entity.Status(data.Status),
		SlotStart:          data.SlotStart,
		SlotEnd:            data.SlotEnd,
		WindowStartedAt:    data.WindowStartedAt,
		WindowExpiresAt:    data.WindowExpiresAt,
		Choices:            choices,
		SubmittedAt:        data.SubmittedAt,
		NotificationsCount: data.NotificationsCount,
		LastNotificationAt: data.LastNotificationAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromRegistrationDomain converts a domain Registration entity to a GORM RegistrationModel.
func fromRegistrationDomain(data *entity.Registration) *model.RegistrationModel {
	if data == nil {
		return nil
	}

	return &model.RegistrationModel{
		ID:                 data.ID,
		Document:           data.Document,
		CompanyName:        data.CompanyName,
		ContactEmail:       data.ContactEmail,
		ContactPhone:       data.ContactPhone,
		Segment:            data.Segment,
		StandsQuantity:     data.StandsQuantity,
		Status:             string(data.Status),
		SlotStart:          data.SlotStart,
		SlotEnd:            data.SlotEnd,
		WindowStartedAt:    data.WindowStartedAt,
		WindowExpiresAt:    data.WindowExpiresAt,
		Choices:            entity.SerializeChoices(data.Choices),
		SubmittedAt:        data.SubmittedAt,
		NotificationsCount: data.NotificationsCount,
		LastNotificationAt: data.LastNotificationAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
