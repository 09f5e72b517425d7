package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	LeadTime int    `validate:"gte=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(sampleRequest{
		Username: "alice",
		Email:    "alice@example.com",
		LeadTime: 3,
	})
	assert.NoError(t, err)
}

func TestValidateStruct_FieldMessages(t *testing.T) {
	err := ValidateStruct(sampleRequest{
		Username: "al",
		Email:    "not-an-email",
		LeadTime: -1,
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	fields := GetValidationFields(err)
	assert.Contains(t, fields["Username"], "at least")
	assert.Contains(t, fields["Email"], "valid email")
	assert.Contains(t, fields["LeadTime"], "greater than or equal")
}

func TestGetValidationFields_NonValidationError(t *testing.T) {
	assert.Nil(t, GetValidationFields(assert.AnError))
	assert.False(t, IsValidationError(assert.AnError))
}
