package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken(42, "janedoe081234567890", auth.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, "janedoe081234567890", claims["username"])
	assert.Equal(t, "access", claims["type"])
	assert.EqualValues(t, 42, claims["subject_id"])
}

func TestGenerateAccessTokenInvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "not-a-duration")

	_, _, err := svc.GenerateAccessToken(1, "admin", auth.RoleAdmin)
	assert.Error(t, err)
}
