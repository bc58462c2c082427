package impl

import (
	"context"

	"empreende/config"
	"empreende/internal/domain/entity"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/repository"
	"empreende/internal/usecase"
	"empreende/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	registrationRepo repository.RegistrationRepository
	cfg              *config.Config
}

// NewSubscriptionService creates the push-subscription registry.
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	registrationRepo repository.RegistrationRepository,
	cfg *config.Config,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		registrationRepo: registrationRepo,
		cfg:              cfg,
	}
}

// Subscribe upserts the device endpoint for the document's registration. The
// document is stored only as a salted hash.
func (s *subscriptionService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) (*entity.PushSubscription, error) {
	document := util.NormalizeDocument(input.Document)
	if document == "" {
		return nil, domainerrors.ErrInvalidDocument
	}

	registration, err := s.registrationRepo.FindByDocument(ctx, document)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by document")
	}

	subscription := &entity.PushSubscription{
		ID:                 uuid.New(),
		RegistrationID:     &registration.ID,
		DocumentHash:       util.HashDocument(document, s.cfg.Security.DocumentHashSalt),
		Endpoint:           input.Endpoint,
		P256dh:             input.P256dh,
		Auth:               input.Auth,
		Status:             entity.SubscriptionActive,
		CompanyName:        registration.CompanyName,
		RegistrationStatus: registration.Status,
	}

	if err := s.subscriptionRepo.Upsert(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to upsert subscription")
	}

	return subscription, nil
}

// Unsubscribe marks the caller's subscription revoked. The client already
// dropped its local subscription best effort; a local failure never blocks
// this server-side revocation.
func (s *subscriptionService) Unsubscribe(ctx context.Context, input *usecase.UnsubscribeInput) error {
	document := util.NormalizeDocument(input.Document)
	if document == "" {
		return domainerrors.ErrInvalidDocument
	}

	hash := util.HashDocument(document, s.cfg.Security.DocumentHashSalt)

	revoked, err := s.subscriptionRepo.RevokeByEndpoint(ctx, input.Endpoint, hash)
	if err != nil {
		return errors.Wrap(err, "failed to revoke subscription")
	}
	if revoked == 0 {
		return domainerrors.ErrSubscriptionNotFound
	}

	return nil
}

// HasActiveSubscription answers only for the calling device's endpoint so the
// response never leaks whether other devices are subscribed.
func (s *subscriptionService) HasActiveSubscription(ctx context.Context, document, endpoint string) (bool, error) {
	normalized := util.NormalizeDocument(document)
	if normalized == "" {
		return false, domainerrors.ErrInvalidDocument
	}

	registration, err := s.registrationRepo.FindByDocument(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find registration by document")
	}

	hash := util.HashDocument(normalized, s.cfg.Security.DocumentHashSalt)

	active, err := s.subscriptionRepo.HasActive(ctx, registration.ID, hash, endpoint)
	if err != nil {
		return false, errors.Wrap(err, "failed to check active subscription")
	}

	return active, nil
}
