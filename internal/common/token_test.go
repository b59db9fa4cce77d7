package common

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronet/internal/apperror"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrTokenExpired))
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrTokenInvalid))
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrTokenInvalid))
	}
}

func TestTokenService_FreshTokenPerIssue(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	t1, err := svc.Issue(42)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // iat has second resolution
	t2, err := svc.Issue(42)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}
