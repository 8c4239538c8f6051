// Package server provides the HTTP API for template search and recommendations.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrValidationList groups the field errors of one request.
type ErrValidationList struct {
	Errors []*ErrValidation
}

func (e *ErrValidationList) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" - "+fe.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// ErrCatalogUnavailable indicates the template catalog could not be loaded
type ErrCatalogUnavailable struct {
	Cause error
}

func (e *ErrCatalogUnavailable) Error() string {
	return fmt.Sprintf("template catalog unavailable: %v", e.Cause)
}

func (e *ErrCatalogUnavailable) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var validationList *ErrValidationList
	var catalogErr *ErrCatalogUnavailable
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &validation), errors.As(err, &validationList):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &catalogErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fromValidator converts validator errors into field errors keyed by JSON name.
func fromValidator(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}

	list := &ErrValidationList{Errors: make([]*ErrValidation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		list.Errors = append(list.Errors, &ErrValidation{
			Field:   strings.ToLower(fe.Field()),
			Message: validationMessage(fe),
		})
	}
	return list
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed the " + fe.Tag() + " check"
	}
}
