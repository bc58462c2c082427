package errors

import (
	"net/http"

	"empreende/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business error code, so a WithDetails copy still
// compares equal to its predefined base error.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Registration-related errors
	ErrRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"REGISTRATION_NOT_FOUND",
		"Cadastro não encontrado",
		"",
	)

	ErrRegistrationAlreadyExists = NewBaseError(
		http.StatusConflict,
		"REGISTRATION_ALREADY_EXISTS",
		"Já existe um cadastro com este CNPJ/CPF",
		"",
	)

	ErrInvalidDocument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DOCUMENT",
		"CNPJ/CPF inválido",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Status de cadastro inválido",
		"",
	)

	// Stand-selection errors
	ErrInvalidChoiceCount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CHOICE_COUNT",
		"A quantidade de estandes escolhidos não corresponde à quantidade contratada",
		"",
	)

	ErrDuplicateChoices = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_CHOICES",
		"Os estandes escolhidos devem ser distintos",
		"",
	)

	ErrChoiceOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"CHOICE_OUT_OF_RANGE",
		"Estande fora da faixa disponível para este cadastro",
		"",
	)

	ErrSelectionClosed = NewBaseError(
		http.StatusConflict,
		"SELECTION_CLOSED",
		"O período de escolha de estandes não está aberto para este cadastro",
		"",
	)

	ErrAlreadySubmitted = NewBaseError(
		http.StatusConflict,
		"ALREADY_SUBMITTED",
		"A escolha de estandes já foi registrada",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Inscrição de notificações não encontrada",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuário ou senha incorretos",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Acesso não autorizado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Falha na validação dos dados enviados",
		"",
	)

	// Configuration errors: surfaced when a required credential is absent at
	// invocation time. The operation refuses to run rather than partially
	// executing.
	ErrConfigurationMissing = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_MISSING",
		"Configuração obrigatória ausente",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflito de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha ao acessar o banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
