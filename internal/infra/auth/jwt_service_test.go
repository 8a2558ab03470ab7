package auth

import (
	"testing"
	"time"

	"dispatch/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(accessSecret string) *config.Config {
	return &config.Config{
		SecretKey: struct {
			Access  string `json:"access" yaml:"access"`
			Refresh string `json:"refresh" yaml:"refresh"`
		}{
			Access:  accessSecret,
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}
}

// signTestToken mints an HS256 token the way the account service issues them.
func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	userID := uuid.New()
	token := signTestToken(t, testAccessSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"roles": []string{"user", "admin"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
}

func TestJWTService_ValidateToken_NoRoles(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	userID := uuid.New()
	token := signTestToken(t, testAccessSecret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Empty(t, claims.Roles)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	token := signTestToken(t, "a_different_secret_entirely", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	token := signTestToken(t, testAccessSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_NotAJWT(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_BadSubject(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing sub", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}},
		{"non-uuid sub", jwt.MapClaims{"sub": "rider-42", "exp": time.Now().Add(time.Hour).Unix()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signTestToken(t, testAccessSecret, tt.claims)

			claims, err := jwtService.ValidateToken(token)
			assert.ErrorIs(t, err, jwt.ErrTokenInvalidSubject)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
