package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "empreende/internal/delivery/context"
	"empreende/internal/delivery/http/response"
	"empreende/internal/domain/entity"
	"empreende/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SelectionHandlerParams holds dependencies for SelectionHandler, injected by Fx.
type SelectionHandlerParams struct {
	fx.In

	SelectionUC    usecase.SelectionUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// SelectionHandler holds dependencies for selection-window handlers
type SelectionHandler struct {
	selectionUC    usecase.SelectionUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewSelectionHandler is the constructor for SelectionHandler
func NewSelectionHandler(params SelectionHandlerParams) *SelectionHandler {
	return &SelectionHandler{
		selectionUC:    params.SelectionUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// OpenWindowRequest represents the admin request to open a selection window
type OpenWindowRequest struct {
	SlotStart       int    `json:"slot_start" validate:"required,gte=1"`
	SlotEnd         int    `json:"slot_end" validate:"required,gte=1"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	Status          string `json:"status"`
}

// SubmitChoicesRequest represents the exhibitor's stand choice submission
type SubmitChoicesRequest struct {
	Choices []int `json:"choices" validate:"required,min=1"`
}

// OpenWindowResponse pairs the updated registration with the immediate
// notification fan-out counts.
type OpenWindowResponse struct {
	Registration *entity.Registration    `json:"registration"`
	Notification *usecase.DispatchResult `json:"notification,omitempty"`
}

// OpenWindow opens a stand-selection window and pushes the opened notice
func (h *SelectionHandler) OpenWindow(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de inscrição inválido")
	}

	var req OpenWindowRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de janela inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	registration, err := h.selectionUC.OpenWindow(c.Request().Context(), &usecase.OpenWindowInput{
		RegistrationID: id,
		SlotStart:      req.SlotStart,
		SlotEnd:        req.SlotEnd,
		Duration:       time.Duration(req.DurationMinutes) * time.Minute,
		Status:         entity.Status(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// The window-opened push is best effort: the window is open either way
	// and the reminder sweep covers a failed first delivery.
	result, err := h.notificationUC.Dispatch(c.Request().Context(), &usecase.DispatchInput{
		RegistrationID: id,
		Reminder:       false,
	})
	if err != nil {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
		logger.Warn("Window-opened push failed",
			slog.String("registrationID", id.String()),
			slog.Any("error", err),
		)
	}

	return response.Success(c, http.StatusOK, OpenWindowResponse{
		Registration: registration,
		Notification: result,
	}, "Janela de escolha aberta com sucesso")
}

// SubmitChoices finalizes the exhibitor's stand choices
func (h *SelectionHandler) SubmitChoices(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de inscrição inválido")
	}

	var req SubmitChoicesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de escolha inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	registration, err := h.selectionUC.SubmitChoices(c.Request().Context(), &usecase.SubmitChoicesInput{
		RegistrationID: id,
		Choices:        req.Choices,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registration, "Escolha de estandes confirmada com sucesso")
}
