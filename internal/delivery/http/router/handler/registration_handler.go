package handler

import (
	"log/slog"
	"net/http"

	"empreende/internal/delivery/http/response"
	"empreende/internal/domain/entity"
	"empreende/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler holds dependencies for registration-related handlers
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

// UpdateStatusRequest represents the request body for an admin status change
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Register handles exhibitor sign-up
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de inscrição inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	registration, err := h.registrationUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registration, "Inscrição recebida com sucesso")
}

// Lookup handles the public status lookup by document
func (h *RegistrationHandler) Lookup(c echo.Context) error {
	document := c.QueryParam("documento")
	if document == "" {
		document = c.QueryParam("document")
	}
	if document == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Informe o documento para consulta")
	}

	view, err := h.registrationUC.LookupByDocument(c.Request().Context(), document)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Consulta realizada com sucesso")
}

// StatusQR renders the QR code pointing at the public status page
func (h *RegistrationHandler) StatusQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de inscrição inválido")
	}

	png, err := h.registrationUC.StatusQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// List handles the admin dashboard listing
func (h *RegistrationHandler) List(c echo.Context) error {
	var status *entity.Status
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.Status(raw)
		status = &s
	}

	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	registrations, err := h.registrationUC.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registrations, "Inscrições listadas com sucesso")
}

// UpdateStatus applies an admin status change (approve, reject, cancel)
func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Identificador de inscrição inválido")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de status inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	registration, err := h.registrationUC.UpdateStatus(c.Request().Context(), id, entity.Status(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registration, "Status atualizado com sucesso")
}
