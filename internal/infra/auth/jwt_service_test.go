package auth

import (
	"testing"
	"time"

	"harvest/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = secret
	cfg.Env.ServiceName = "harvest-test"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testAccessSecret, time.Minute))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"farmer", "consumer"}

	accessToken, err := jwtService.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "harvest-test", claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testAccessSecret, time.Minute))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("another_secret_key_for_signing_tokens", time.Minute))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig(testAccessSecret, time.Minute))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), []string{"admin"})
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testAccessSecret, time.Minute))
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uuid.New().String(),
		"type": "access",
		"iat":  past.Unix(),
		"exp":  past.Add(time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsNonAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testAccessSecret, time.Minute))
	require.NoError(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uuid.New().String(),
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := refresh.SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "unexpected token type")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("", time.Minute))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
