package apierror

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
)

// ErrorResponse is what services hand back to routes. It is serialized as the
// body of the error reply and Code is used as the HTTP status.
type ErrorResponse interface {
	error
	Code() int
}

type Kind string

const (
	KindValidation     Kind = "validation"
	KindConflict       Kind = "conflict"
	KindNotFound       Kind = "not_found"
	KindMalformedInput Kind = "malformed_input"
	KindInternal       Kind = "internal"
)

type APIError struct {
	Success bool   `json:"success"`
	Kind    Kind   `json:"kind"`
	Message string `json:"error"`
	status  int
}

func (e *APIError) Error() string { return e.Message }
func (e *APIError) Code() int     { return e.status }

func NewSimple(code int, message string) *APIError {
	kind := KindInternal
	switch {
	case code == http.StatusNotFound:
		kind = KindNotFound
	case code >= 400 && code < 500:
		kind = KindMalformedInput
	}
	return &APIError{Kind: kind, Message: message, status: code}
}

// ValidationError lists every required field that was missing and every
// field whose value is not acceptable.
type ValidationError struct {
	APIError
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

func NewValidationError(missing, invalid []string) *ValidationError {
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "Invalid value for fields: "+strings.Join(invalid, ", "))
	}
	return &ValidationError{
		APIError: APIError{Kind: KindValidation, Message: strings.Join(parts, "; "), status: http.StatusBadRequest},
		Missing:  missing,
		Invalid:  invalid,
	}
}

// ConflictError carries the already booked appointment a new one collides with.
type ConflictError struct {
	APIError
	ConflictingID int `json:"conflictingId"`
}

func NewConflictError(id int, doctor, date, start string, duration int, patient string) *ConflictError {
	msg := fmt.Sprintf(
		"Time conflict detected: %s already has an appointment on %s from %s for %d minutes (Patient: %s)",
		doctor, date, start, duration, patient,
	)
	return &ConflictError{
		APIError:      APIError{Kind: KindConflict, Message: msg, status: http.StatusBadRequest},
		ConflictingID: id,
	}
}

type NotFoundError struct {
	APIError
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{APIError{Kind: KindNotFound, Message: message, status: http.StatusNotFound}}
}

type MalformedInputError struct {
	APIError
}

func NewMalformedInputError(message string) *MalformedInputError {
	return &MalformedInputError{APIError{Kind: KindMalformedInput, Message: message, status: http.StatusBadRequest}}
}

func NewMissingParamError(param string) *ValidationError {
	return NewValidationError([]string{param}, nil)
}

func NewInvalidParamTypeError(param, typ string) *MalformedInputError {
	return NewMalformedInputError(fmt.Sprintf("Parameter '%s' must be of type %s", param, typ))
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError  = NewMalformedInputError("Malformed request body")
	NotFound            = NewNotFoundError("Not found")
)

// FromValidationError turns validator failures into a single ValidationError.
// "required" and "nonzero" failures count as missing fields.
// Field names are whatever the validator reports, which is the json name when
// the validator has a tag name func registered.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" || fe.Tag() == "nonzero" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	return NewValidationError(missing, invalid)
}
