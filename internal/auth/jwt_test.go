package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	userID := uuid.New()

	token, tokenID, err := svc.Generate(userID, models.RoleHospital)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, models.RoleHospital, claims.Role)
	assert.Equal(t, tokenID, claims.ID)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret", time.Hour).Generate(uuid.New(), models.RoleDonor)
	require.NoError(t, err)

	_, err = NewJWTService("other", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute)
	token, _, err := svc.Generate(uuid.New(), models.RoleDonor)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := NewJWTService("secret", time.Hour).Validate("not-a-token")
	assert.Error(t, err)
}
