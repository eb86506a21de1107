package auth

import (
	"testing"
	"time"

	"fangate/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Pass = "test_pass_secret_key_very_long_for_testing"

	return cfg
}

func signSessionToken(t *testing.T, secret string, userID uuid.UUID, email string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateSessionToken(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	token := signSessionToken(t, cfg.SecretKey.Access, userID, "fan@example.com", time.Minute)

	claims, err := jwtService.ValidateSessionToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "fan@example.com", claims.Email)
}

func TestJWTService_ValidateSessionToken_Expired(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token := signSessionToken(t, cfg.SecretKey.Access, uuid.New(), "fan@example.com", -time.Minute)

	claims, err := jwtService.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateSessionToken_WrongSecret(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token := signSessionToken(t, "some_other_secret_entirely", uuid.New(), "fan@example.com", time.Minute)

	claims, err := jwtService.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_GenerateAndValidatePassToken(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	verificationID := uuid.New()

	token, expiresAt, err := jwtService.GeneratePassToken(userID, verificationID, 135)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiresAt, 5*time.Second)

	claims, err := jwtService.ValidatePassToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, verificationID, claims.VerificationID)
	assert.Equal(t, 135, claims.FanScore)
}

func TestJWTService_PassTokenNotValidAsSessionToken(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// The two token kinds are signed with different secrets.
	token, _, err := jwtService.GeneratePassToken(uuid.New(), uuid.New(), 80)
	require.NoError(t, err)

	claims, err := jwtService.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidatePassToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetPassTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, jwtService.GetPassTokenDuration())
}
