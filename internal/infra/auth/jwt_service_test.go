package auth

import (
	"testing"
	"time"

	"placelog/config"
	domainerrors "placelog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	require.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.IssueToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_VerifyToken_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.IssueToken(42)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrExpiredToken)
}

func TestJWTService_VerifyToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer-secret", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("other-secret", time.Hour))
	require.NoError(t, err)

	token, err := issuer.IssueToken(42)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.NotErrorIs(t, err, domainerrors.ErrExpiredToken)
}

func TestJWTService_VerifyToken_Garbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
