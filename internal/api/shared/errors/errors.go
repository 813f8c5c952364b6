package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/royaltyguard/royalty-checker/internal/domain"
)

// ErrorCode is the machine readable kind of an APIError
type ErrorCode string

const (
	// Request faults, rejected before any classification work
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"

	// Server and upstream faults
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

var statusByCode = map[ErrorCode]int{
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeValidationFailed: http.StatusUnprocessableEntity,
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeInternalError:    http.StatusInternalServerError,
	ErrCodeServiceError:     http.StatusBadGateway,
}

// APIError is the JSON error body of every failed request
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Status returns the HTTP status the error is served with
func (e *APIError) Status() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newAPIError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{Code: code, Message: message, Details: strings.Join(details, ", ")}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeNotFound, message, details)
}

// NewValidationError reports request fields that failed validation
func NewValidationError(details ...string) *APIError {
	return newAPIError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeUnauthorized, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeInternalError, message, details)
}

// NewServiceError reports an upstream data source failure. Upstream error text stays
// in the server logs; it can carry provider URLs and credentials.
func NewServiceError(message string) *APIError {
	return newAPIError(ErrCodeServiceError, message, nil)
}

// FromDomain maps err to an APIError by its domain sentinel. Errors without a
// known sentinel are treated as upstream failures and served without details.
func FromDomain(err error, message string) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case stderrors.Is(err, domain.ErrInvalidPaginationToken):
		return NewBadRequestError("Invalid pagination token", err.Error())
	case stderrors.Is(err, domain.ErrInvalidMint):
		return NewValidationError(err.Error())
	case stderrors.Is(err, domain.ErrMetadataNotFound):
		return NewNotFoundError(message, err.Error())
	default:
		return NewServiceError(message)
	}
}
