package handler

import (
	"log/slog"
	"net/http"

	"empreende/internal/delivery/http/response"
	"empreende/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for push-subscription handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// Subscribe registers the calling device's push endpoint
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req usecase.SubscribeInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de assinatura inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.Subscribe(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Notificações ativadas com sucesso")
}

// Unsubscribe revokes the calling device's push endpoint
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	var req usecase.UnsubscribeInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cancelamento inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notificações desativadas"}, "Notificações desativadas com sucesso")
}

// Active reports whether the calling device holds an active subscription
func (h *SubscriptionHandler) Active(c echo.Context) error {
	document := c.QueryParam("documento")
	if document == "" {
		document = c.QueryParam("document")
	}
	endpoint := c.QueryParam("endpoint")
	if document == "" || endpoint == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Informe documento e endpoint para consulta")
	}

	active, err := h.subscriptionUC.HasActiveSubscription(c.Request().Context(), document, endpoint)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"active": active}, "Consulta realizada com sucesso")
}
