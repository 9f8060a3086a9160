package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-referral/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError      ErrorCode = "internal_error"
	ErrCodeDatabaseError      ErrorCode = "database_error"
	ErrCodeServiceError       ErrorCode = "service_error"
	ErrCodeVerificationFailed ErrorCode = "verification_failed"
	ErrCodeUnavailable        ErrorCode = "unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// HTTPStatus returns the response status of the error code
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrCodeVerificationFailed:
		return http.StatusBadGateway
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newError(ErrCodeForbidden, message, details)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(ErrCodeConflict, message, details)
}

func NewTooManyRequestsError(message string, details ...string) *APIError {
	return newError(ErrCodeTooManyRequests, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newError(ErrCodeDatabaseError, message, details)
}

func NewServiceError(message string, details ...string) *APIError {
	return newError(ErrCodeServiceError, message, details)
}

func NewVerificationError(message string, details ...string) *APIError {
	return newError(ErrCodeVerificationFailed, message, details)
}

func NewUnavailableError(message string, details ...string) *APIError {
	return newError(ErrCodeUnavailable, message, details)
}

// FromDomainError maps a domain error onto an API error.
// Anything that is not a known domain outcome becomes a database error.
func FromDomainError(message string, err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, domain.ErrProofVerificationFailed):
		return NewVerificationError(message, err.Error())
	case errors.Is(err, domain.ErrReferrerAlreadySet),
		errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrStaleRootVersion),
		errors.Is(err, domain.ErrClaimExceedsBalance),
		errors.Is(err, domain.ErrRootNotSetOnChain):
		return NewConflictError(message, err.Error())
	case errors.Is(err, domain.ErrNoClaimableBalance),
		errors.Is(err, domain.ErrNoRootGenerated),
		errors.Is(err, domain.ErrReferralCodeNotFound):
		return NewNotFoundError(message, err.Error())
	case errors.Is(err, domain.ErrInvalidChain),
		errors.Is(err, domain.ErrInvalidInput):
		return NewBadRequestError(message, err.Error())
	case domain.IsValidationError(err):
		return NewValidationError(err.Error())
	case errors.Is(err, domain.ErrRootUpdateUnsupported):
		return NewServiceError(message, err.Error())
	default:
		return NewDatabaseError(message, err.Error())
	}
}
