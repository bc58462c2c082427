package impl

import (
	"context"

	"empreende/internal/domain/entity"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/repository"
	"empreende/internal/domain/service"
	"empreende/internal/usecase"
	"empreende/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	qrcodeService    service.QRCodeService
	clock            service.Clock
}

// NewRegistrationService creates the registration application service.
func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	qrcodeService service.QRCodeService,
	clock service.Clock,
) usecase.RegistrationUsecase {
	return &registrationService{
		registrationRepo: registrationRepo,
		qrcodeService:    qrcodeService,
		clock:            clock,
	}
}

// Register creates a new registration in pending review. The stands quantity
// is fixed here and never changes afterwards.
func (s *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Registration, error) {
	document := util.NormalizeDocument(input.Document)
	if document == "" {
		return nil, domainerrors.ErrInvalidDocument
	}

	now := s.clock.Now()
	registration := &entity.Registration{
		ID:             uuid.New(),
		Document:       document,
		CompanyName:    input.CompanyName,
		ContactEmail:   input.ContactEmail,
		ContactPhone:   input.ContactPhone,
		Segment:        input.Segment,
		StandsQuantity: input.StandsQuantity,
		Status:         entity.StatusPendingReview,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		if errors.Is(err, repository.ErrDuplicateRegistration) {
			return nil, domainerrors.ErrRegistrationAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create registration")
	}

	return registration, nil
}

// LookupByDocument is the public status lookup. A miss reads as "not found",
// never as a fault.
func (s *registrationService) LookupByDocument(ctx context.Context, document string) (*usecase.RegistrationView, error) {
	normalized := util.NormalizeDocument(document)
	if normalized == "" {
		return nil, domainerrors.ErrInvalidDocument
	}

	registration, err := s.registrationRepo.FindByDocument(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by document")
	}

	return &usecase.RegistrationView{
		Registration: registration,
		Phase:        registration.SelectionPhase(s.clock.Now()),
		Stands:       registration.AvailableStands(),
	}, nil
}

// List serves the admin dashboard.
func (s *registrationService) List(ctx context.Context, status *entity.Status, limit, offset int) ([]*entity.Registration, error) {
	if status != nil && !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	registrations, err := s.registrationRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registrations")
	}

	return registrations, nil
}

// UpdateStatus applies an admin workflow transition.
func (s *registrationService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.Registration, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	if err := s.registrationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to update registration status")
	}

	registration, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload registration")
	}

	return registration, nil
}

// StatusQR renders a QR code pointing at the public status page.
func (s *registrationService) StatusQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	registration, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration")
	}

	qrCode, err := s.qrcodeService.GenerateStatusQR(registration.Document)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate status QR")
	}

	return qrCode, nil
}
