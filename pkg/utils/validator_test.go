package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Kind  string `json:"kind" validate:"required,oneof=customer business"`
}

func TestValidateStruct_KeysByJSONTag(t *testing.T) {
	errs := ValidateStruct(&sampleInput{Email: "not-an-email", Kind: "admin"})
	require.NotNil(t, errs)

	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "kind")
	assert.Equal(t, "Invalid email format", errs["email"])
	assert.Equal(t, "Must be one of: customer, business", errs["kind"])
}

func TestValidateStruct_ValidInputReturnsNil(t *testing.T) {
	errs := ValidateStruct(&sampleInput{Email: "jane@example.com", Kind: "customer"})
	assert.Nil(t, errs)
}

func TestValidationError_MessageNamesEveryField(t *testing.T) {
	err := NewValidationError(map[string]string{"email": "Invalid email format"})
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "email")
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 6))
	assert.Equal(t, 12, CalculateOffset(3, 6))
	assert.Equal(t, 0, CalculateOffset(0, 6))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 6))
	assert.Equal(t, 1, CalculateTotalPages(6, 6))
	assert.Equal(t, 2, CalculateTotalPages(7, 6))
}
