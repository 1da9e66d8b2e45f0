package lemonsqueezy

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
	ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")
	ErrNoErrorObjects = errors.New("response has no errors member")
	ErrIDRequired     = errors.New("resource ID is required")
	ErrUpdateRequired = errors.New("update attributes are required")
)

// APIError is one error object reported by the API.
type APIError struct {
	Status string       `json:"status,omitempty" yaml:"status,omitempty"`
	Code   string       `json:"code,omitempty"   yaml:"code,omitempty"`
	Title  string       `json:"title,omitempty"  yaml:"title,omitempty"`
	Detail string       `json:"detail,omitempty" yaml:"detail,omitempty"`
	Source *ErrorSource `json:"source,omitempty" yaml:"source,omitempty"`
}

// ErrorSource points at the request member that caused an error.
type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"   yaml:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty" yaml:"parameter,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Title
	if e.Detail != "" {
		if msg != "" {
			msg += ": "
		}

		msg += e.Detail
	}

	if e.Status != "" {
		msg = fmt.Sprintf("%s (status: %s)", msg, e.Status)
	}

	return msg
}

// StatusCode returns the HTTP status carried by the error object, or 0.
func (e *APIError) StatusCode() int {
	code, err := strconv.Atoi(e.Status)
	if err != nil {
		return 0
	}

	return code
}

// ResponseError is returned when the API answers with a structured error document.
type ResponseError struct {
	Errors []APIError `json:"errors" yaml:"errors"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return "API error"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	msgs := make([]string, 0, len(e.Errors))
	for i := range e.Errors {
		msgs = append(msgs, e.Errors[i].Error())
	}

	return "multiple errors: " + strings.Join(msgs, "; ")
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// UnknownError is returned when a response body matches neither the expected
// document nor the error document. Body holds the raw text when it is valid
// UTF-8 and is empty otherwise. Cause is the error from decoding the
// expected document.
type UnknownError struct {
	Body  string
	Cause error
}

// Error implements the error interface.
func (e *UnknownError) Error() string {
	if e.Body == "" {
		return "unknown API error"
	}

	return "unknown API error: " + e.Body
}

// Unwrap returns the decoding error of the expected document.
func (e *UnknownError) Unwrap() error {
	return e.Cause
}

// NewUnknownError wraps an undecodable body.
func NewUnknownError(body []byte, cause error) *UnknownError {
	text := ""
	if utf8.Valid(body) {
		text = string(body)
	}

	return &UnknownError{Body: text, Cause: cause}
}

// ParseResponseError parses an error document. The errors member must be present.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var doc struct {
		Errors *[]APIError `json:"errors"`
	}

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	if doc.Errors == nil {
		return nil, ErrNoErrorObjects
	}

	return &ResponseError{Errors: *doc.Errors}, nil
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsValidationError checks if the API rejected the request body or query.
func IsValidationError(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity) || hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode() == status
	}

	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		first := errResp.FirstError()
		if first != nil {
			return first.StatusCode() == status
		}
	}

	return false
}
