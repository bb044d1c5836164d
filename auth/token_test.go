package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := service.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	service := NewTokenService("test-secret", -time.Minute)

	token, err := service.Issue(uuid.New())
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := service.Verify(token)
		assert.Error(t, err, "token %q should not verify", token)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.Issue(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = service.Verify(tampered)
	assert.Error(t, err)
}

func TestNewTokenServiceDefaultsTTL(t *testing.T) {
	service := NewTokenService("test-secret", 0)
	assert.Equal(t, DefaultTokenTTL, service.ttl)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hashed)

	assert.True(t, CheckPassword(hashed, "secret123"))
	assert.False(t, CheckPassword(hashed, "secret124"))
	assert.False(t, CheckPassword("", "secret123"))
}
