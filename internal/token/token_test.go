package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret-for-unit-tests"

func TestIssueAndVerify(t *testing.T) {
	svc := NewService(testSecret)

	t.Run("round-trip returns the embedded identity", func(t *testing.T) {
		signed, err := svc.Issue("user-123", time.Hour)
		require.NoError(t, err)

		claims, err := svc.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
	})

	t.Run("callers select their own duration", func(t *testing.T) {
		short, err := svc.Issue("user-123", time.Hour)
		require.NoError(t, err)
		long, err := svc.Issue("user-123", 24*time.Hour)
		require.NoError(t, err)

		shortClaims, err := svc.Verify(short)
		require.NoError(t, err)
		longClaims, err := svc.Verify(long)
		require.NoError(t, err)

		assert.True(t, longClaims.ExpiresAt.After(shortClaims.ExpiresAt.Add(22*time.Hour)))
	})
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	svc := NewService(testSecret).WithClock(func() time.Time { return issuedAt })
	signed, err := svc.Issue("user-123", time.Hour)
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		svc.WithClock(func() time.Time { return issuedAt.Add(59 * time.Minute) })
		claims, err := svc.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
	})

	t.Run("expired 61 minutes after issuance", func(t *testing.T) {
		svc.WithClock(func() time.Time { return issuedAt.Add(61 * time.Minute) })
		_, err := svc.Verify(signed)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestVerifyInvalid(t *testing.T) {
	svc := NewService(testSecret)

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := NewService("rotated-secret-invalidates-everything")
		signed, err := other.Issue("user-123", time.Hour)
		require.NoError(t, err)

		_, err = svc.Verify(signed)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, tok := range []string{"", "garbage", "a.b.c"} {
			_, err := svc.Verify(tok)
			assert.ErrorIs(t, err, ErrTokenInvalid, tok)
		}
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		signed, err := svc.Issue("user-123", time.Hour)
		require.NoError(t, err)

		tampered := signed[:len(signed)-2] + "xx"
		_, err = svc.Verify(tampered)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
