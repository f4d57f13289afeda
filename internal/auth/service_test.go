package auth_test

import (
	"testing"

	"club-stats-backend/internal/auth"
	apperrors "club-stats-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *auth.AuthService {
	return auth.NewAuthService("test-secret-key", "admin@club.test", "sup3r-secret")
}

func TestLogin(t *testing.T) {
	service := newTestAuthService()

	response, err := service.Login(&auth.LoginRequest{
		Email:    "admin@club.test",
		Password: "sup3r-secret",
	})

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, "bearer", response.TokenType)
	assert.Equal(t, int64(24*60*60), response.ExpiresIn)
}

func TestLoginWrongPassword(t *testing.T) {
	service := newTestAuthService()

	response, err := service.Login(&auth.LoginRequest{
		Email:    "admin@club.test",
		Password: "guess",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongEmail(t *testing.T) {
	service := newTestAuthService()

	response, err := service.Login(&auth.LoginRequest{
		Email:    "intruder@club.test",
		Password: "sup3r-secret",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service := newTestAuthService()

	token, err := service.GenerateJWT("admin@club.test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@club.test", claims.Email)
	assert.Equal(t, "admin@club.test", claims.Subject)
	assert.Equal(t, "club-stats-backend", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	issuer := auth.NewAuthService("secret-one", "admin@club.test", "sup3r-secret")
	verifier := auth.NewAuthService("secret-two", "admin@club.test", "sup3r-secret")

	token, err := issuer.GenerateJWT("admin@club.test")
	require.NoError(t, err)

	claims, err := verifier.ValidateJWT(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateJWTMalformed(t *testing.T) {
	service := newTestAuthService()

	claims, err := service.ValidateJWT("not.a.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
