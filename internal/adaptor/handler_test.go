package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance-market/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", errors.New("package abc not found"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get package: %w", errors.New("package abc not found")), http.StatusNotFound},
		{"forbidden", errors.New("forbidden: not the package owner"), http.StatusForbidden},
		{"invalid credentials", errors.New("invalid credentials"), http.StatusUnauthorized},
		{"invalid input", errors.New("invalid order ID format x"), http.StatusBadRequest},
		{"unclassified", errors.New("connection reset by peer"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, tc.err)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestHandleServiceError_ValidationErrorCarriesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, utils.NewValidationError(map[string]string{
		"min_price": "Invalid value 'cheap'. Expected a number.",
		"page":      "Invalid value 'x'. Expected an integer.",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Status)

	fields, ok := body.Errors.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "min_price")
	assert.Contains(t, fields, "page")
}

func TestHandleServiceError_WrappedValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("create package: %w", utils.NewValidationError(map[string]string{"details": "Expected exactly 3 offers, got 2"}))
	handleServiceError(rec, wrapped)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
