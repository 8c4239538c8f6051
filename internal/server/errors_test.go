package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/template-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "q", Message: "is required"}
	assert.Equal(t, "validation error: q - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrCatalogUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ErrCatalogUnavailable{Cause: cause}
	assert.Equal(t, "template catalog unavailable: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "f", Message: "m"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrValidationList",
			err:      &ErrValidationList{},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped catalog error",
			err:      fmt.Errorf("search: %w", &ErrCatalogUnavailable{Cause: errors.New("x")}),
			expected: http.StatusBadGateway,
		},
		{
			name:     "body too large",
			err:      &http.MaxBytesError{Limit: 10},
			expected: http.StatusRequestEntityTooLarge,
		},
		{
			name:     "generic error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestFromValidator(t *testing.T) {
	answers := types.QuizAnswers{Experience: "entry", Industry: "space"}
	err := fromValidator(answers.Validate())

	var list *ErrValidationList
	require.ErrorAs(t, err, &list)

	byField := make(map[string]string)
	for _, fe := range list.Errors {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be one of: tech, business, creative, healthcare, education, other", byField["industry"])
	assert.Equal(t, "is required", byField["style"])
	assert.Equal(t, "is required", byField["goal"])
	assert.Equal(t, "is required", byField["timeframe"])
	assert.NotContains(t, byField, "experience")

	plain := fromValidator(errors.New("bad json"))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(plain))
}
