package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"empreende/config"
	"empreende/internal/domain/entity"
	domainerrors "empreende/internal/domain/errors"
	"empreende/internal/domain/repository"
	"empreende/internal/domain/service"
	"empreende/internal/usecase"

	"github.com/pkg/errors"
)

const (
	notificationIcon  = "/icons/icon-192.png"
	notificationBadge = "/icons/badge-72.png"
)

type notificationService struct {
	registrationRepo repository.RegistrationRepository
	subscriptionRepo repository.SubscriptionRepository
	pushSender       service.PushSender
	clock            service.Clock
	logger           *slog.Logger
	cfg              *config.Config
	location         *time.Location
}

// NewNotificationService creates the push-notification dispatcher.
func NewNotificationService(
	registrationRepo repository.RegistrationRepository,
	subscriptionRepo repository.SubscriptionRepository,
	pushSender service.PushSender,
	clock service.Clock,
	logger *slog.Logger,
	cfg *config.Config,
) (usecase.NotificationUsecase, error) {
	location, err := time.LoadLocation(cfg.Event.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid event timezone %q", cfg.Event.Timezone)
	}

	return &notificationService{
		registrationRepo: registrationRepo,
		subscriptionRepo: subscriptionRepo,
		pushSender:       pushSender,
		clock:            clock,
		logger:           logger,
		cfg:              cfg,
		location:         location,
	}, nil
}

// Dispatch fans a notification out to every active subscription of one
// registration. Deliveries run concurrently and independently; one failure
// never blocks the others. Partial failure is a result, not an error.
func (s *notificationService) Dispatch(ctx context.Context, input *usecase.DispatchInput) (*usecase.DispatchResult, error) {
	registration, err := s.registrationRepo.FindByID(ctx, input.RegistrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration")
	}

	subscriptions, err := s.subscriptionRepo.FindActiveByRegistration(ctx, registration.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions")
	}

	// No listeners is a legitimate zero-delivered result, not a failure, and
	// must leave the registration untouched.
	if len(subscriptions) == 0 {
		return &usecase.DispatchResult{}, nil
	}

	payload := s.composePayload(registration, input.Reminder)

	var (
		mu        sync.Mutex
		delivered int
		revoke    []*entity.PushSubscription
		failed    int
	)

	var wg sync.WaitGroup
	for _, subscription := range subscriptions {
		wg.Add(1)
		go func() {
			defer wg.Done()

			sendErr := s.pushSender.Send(ctx, subscription, payload)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case sendErr == nil:
				delivered++
			case service.IsPermanent(sendErr):
				failed++
				revoke = append(revoke, subscription)
			default:
				failed++
				s.logger.Warn("push delivery failed, keeping subscription active",
					slog.String("registration_id", registration.ID.String()),
					slog.String("subscription_id", subscription.ID.String()),
					slog.String("error", sendErr.Error()),
				)
			}
		}()
	}
	wg.Wait()

	// Endpoints the push service reported gone are forgotten; revocation
	// failures are logged, the next sweep will retry classification anyway.
	for _, subscription := range revoke {
		if err := s.subscriptionRepo.Revoke(ctx, subscription.ID); err != nil {
			s.logger.Error("failed to revoke dead subscription",
				slog.String("subscription_id", subscription.ID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			s.logger.Info("revoked subscription for gone endpoint",
				slog.String("subscription_id", subscription.ID.String()),
			)
		}
	}

	if delivered > 0 {
		if err := s.registrationRepo.RecordNotifications(ctx, registration.ID, delivered, s.clock.Now()); err != nil {
			return nil, errors.Wrap(err, "failed to record notifications")
		}
	}

	return &usecase.DispatchResult{Delivered: delivered, Failed: failed}, nil
}

// composePayload renders the pt-BR notification for the opened/reminder
// variants, formatting the deadline in the event's timezone.
func (s *notificationService) composePayload(registration *entity.Registration, reminder bool) *service.PushPayload {
	title := "Escolha de estandes liberada!"
	if reminder {
		title = "Lembrete: escolha seus estandes"
	}

	body := fmt.Sprintf("%s, sua janela de escolha de estandes está aberta.", registration.CompanyName)

	if registration.SlotStart != nil && registration.SlotEnd != nil {
		lo, hi := *registration.SlotStart, *registration.SlotEnd
		if lo > hi {
			lo, hi = hi, lo
		}
		body = fmt.Sprintf("%s Estandes disponíveis: %d a %d.", body, lo, hi)
	}

	if quantity := registration.StandsQuantity; quantity > 0 {
		unit := "estandes"
		if quantity == 1 {
			unit = "estande"
		}
		body = fmt.Sprintf("%s Escolha %d %s.", body, quantity, unit)
	}

	if registration.WindowExpiresAt != nil {
		deadline := registration.WindowExpiresAt.In(s.location)
		body = fmt.Sprintf("%s Prazo: %s.", body, deadline.Format("02/01/2006 às 15:04"))
	}

	data := map[string]string{
		"registration_id": registration.ID.String(),
		"reminder":        fmt.Sprintf("%t", reminder),
	}

	return &service.PushPayload{
		Title: title,
		Body:  body,
		Icon:  notificationIcon,
		Badge: notificationBadge,
		Data:  data,
	}
}
