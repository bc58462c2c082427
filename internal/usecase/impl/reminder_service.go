package impl

import (
	"context"
	"log/slog"
	"time"

	"empreende/config"
	"empreende/internal/domain/repository"
	"empreende/internal/domain/service"
	"empreende/internal/usecase"

	"github.com/pkg/errors"
)

type reminderService struct {
	registrationRepo repository.RegistrationRepository
	subscriptionRepo repository.SubscriptionRepository
	notificationUC   usecase.NotificationUsecase
	clock            service.Clock
	logger           *slog.Logger
	cfg              *config.Config
}

// NewReminderService creates the periodic reminder sweep.
func NewReminderService(
	registrationRepo repository.RegistrationRepository,
	subscriptionRepo repository.SubscriptionRepository,
	notificationUC usecase.NotificationUsecase,
	clock service.Clock,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.ReminderUsecase {
	return &reminderService{
		registrationRepo: registrationRepo,
		subscriptionRepo: subscriptionRepo,
		notificationUC:   notificationUC,
		clock:            clock,
		logger:           logger,
		cfg:              cfg,
	}
}

// Sweep runs one reminder pass. Both lookups happen before any mutation, so a
// query failure aborts cleanly and the next scheduled run simply retries.
func (s *reminderService) Sweep(ctx context.Context) (*usecase.SweepResult, error) {
	result := &usecase.SweepResult{IntervalMinutes: s.cfg.Reminder.IntervalMinutes}

	// Skip registrations nobody is listening to.
	subscribedIDs, err := s.subscriptionRepo.FindActiveRegistrationIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed registrations")
	}
	if len(subscribedIDs) == 0 {
		return result, nil
	}

	due, err := s.registrationRepo.FindDueForReminder(ctx, repository.ReminderQuery{
		Now:             s.clock.Now(),
		Interval:        time.Duration(s.cfg.Reminder.IntervalMinutes) * time.Minute,
		Limit:           s.cfg.Reminder.BatchSize,
		RegistrationIDs: subscribedIDs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query registrations due for reminder")
	}

	// Sequential across registrations: a deliberate throttle against bursting
	// the push service. Fan-out within one registration is still concurrent.
	for _, registration := range due {
		dispatch, err := s.notificationUC.Dispatch(ctx, &usecase.DispatchInput{
			RegistrationID: registration.ID,
			Reminder:       true,
		})
		if err != nil {
			s.logger.Error("reminder dispatch failed",
				slog.String("registration_id", registration.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}

		result.Processed++
		result.Delivered += dispatch.Delivered
		result.Failed += dispatch.Failed
	}

	return result, nil
}
