// Package handler contains the echo handlers for the jobs server.
package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"empreende/config"
	deliverycontext "empreende/internal/delivery/context"
	"empreende/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobsHandlerParams holds dependencies for JobsHandler, injected by Fx.
type JobsHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	ReminderUC     usecase.ReminderUsecase
	NotificationUC usecase.NotificationUsecase
}

// JobsHandler serves the scheduler-invoked job endpoints.
type JobsHandler struct {
	cfg            *config.Config
	logger         *slog.Logger
	reminderUC     usecase.ReminderUsecase
	notificationUC usecase.NotificationUsecase
}

// NewJobsHandler is the constructor for JobsHandler
func NewJobsHandler(params JobsHandlerParams) *JobsHandler {
	return &JobsHandler{
		cfg:            params.Config,
		logger:         params.Logger,
		reminderUC:     params.ReminderUC,
		notificationUC: params.NotificationUC,
	}
}

// DispatchRequest represents the body for a targeted dispatch job
type DispatchRequest struct {
	RegistrationID uuid.UUID `json:"registration_id" validate:"required"`
	Reminder       bool      `json:"reminder"`
}

// Authorize guards the job endpoints with the static scheduler token.
func (h *JobsHandler) Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.cfg.Jobs.Token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Jobs token is not configured"})
		}

		authHeader := c.Request().Header.Get("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.cfg.Jobs.Token)) != 1 {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid jobs token"})
		}

		return next(c)
	}
}

// HandleReminders runs one reminder sweep
func (h *JobsHandler) HandleReminders(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	result, err := h.reminderUC.Sweep(ctx)
	if err != nil {
		logger.Error("Reminder sweep failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Sweep failed"})
	}

	logger.Info("Reminder sweep finished",
		slog.Int("processed", result.Processed),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", result.Failed),
	)

	return c.JSON(http.StatusOK, result)
}

// HandleDispatch delivers to one registration on demand
func (h *JobsHandler) HandleDispatch(c echo.Context) error {
	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid dispatch input"})
	}
	if req.RegistrationID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "registration_id is required"})
	}

	ctx := c.Request().Context()
	result, err := h.notificationUC.Dispatch(ctx, &usecase.DispatchInput{
		RegistrationID: req.RegistrationID,
		Reminder:       req.Reminder,
	})
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
		logger.Error("Dispatch failed",
			slog.String("registrationID", req.RegistrationID.String()),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Dispatch failed"})
	}

	return c.JSON(http.StatusOK, result)
}
