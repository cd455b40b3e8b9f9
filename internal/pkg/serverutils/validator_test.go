package serverutils

import (
	"testing"

	"petgroom-be/internal/apperror"
	"petgroom-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(&dto.RegisterRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "supersecret",
	})
	assert.NoError(t, err)
}

func TestValidateRequestReportsEachField(t *testing.T) {
	err := ValidateRequest(&dto.RegisterRequest{
		FullName: "Jo",
		Email:    "not-an-email",
	})
	require.Error(t, err)

	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "must be at least 3", appErr.Fields["fullname"])
	assert.Equal(t, "must be a valid email address", appErr.Fields["email"])
	assert.Equal(t, "is required", appErr.Fields["password"])
}

func TestValidateRequestChecksPasswordLength(t *testing.T) {
	err := ValidateRequest(&dto.LoginRequest{Email: "maria@example.com"})
	require.Error(t, err)

	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "is required", appErr.Fields["password"])
}
