package auth

import (
	"testing"
	"time"

	"classteacher/config"
	"classteacher/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			Secret:   secret,
			TokenTTL: ttl,
		},
	})
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", -time.Minute)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret-one", time.Hour)
	verifier := newTestTokenService(t, "secret-two", time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	for _, token := range []string{
		"",
		"not-a-token",
		"aaaa.bbbb.cccc",
	} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken, "token %q", token)
	}
}
