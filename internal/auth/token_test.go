package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alfawave-io/alfacrm/internal/auth"
	"github.com/alfawave-io/alfacrm/internal/constants"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()
	t.Run("nil token", func(t *testing.T) {
		t.Parallel()

		var token *auth.Token

		assert.False(t, token.Valid())
	})

	t.Run("empty access token", func(t *testing.T) {
		t.Parallel()

		token := &auth.Token{ExpiresAt: time.Now().Add(time.Hour)}

		assert.False(t, token.Valid())
	})

	t.Run("no expiry never expires", func(t *testing.T) {
		t.Parallel()

		token := &auth.Token{AccessToken: "forever"}

		assert.True(t, token.Valid())
	})

	t.Run("fresh token", func(t *testing.T) {
		t.Parallel()

		token := &auth.Token{
			AccessToken: "fresh",
			ExpiresAt:   time.Now().Add(time.Hour),
		}

		assert.True(t, token.Valid())
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		token := &auth.Token{
			AccessToken: "stale",
			ExpiresAt:   time.Now().Add(-time.Minute),
		}

		assert.False(t, token.Valid())
	})

	t.Run("token inside the safety margin counts as expired", func(t *testing.T) {
		t.Parallel()

		token := &auth.Token{
			AccessToken: "closing",
			ExpiresAt:   time.Now().Add(30 * time.Second),
		}

		assert.False(t, token.Valid())
	})
}

func TestToken_ValidAt(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	token := &auth.Token{
		AccessToken: "timed",
		ExpiresAt:   base.Add(constants.TokenTTL),
	}

	t.Run("well before the cutoff", func(t *testing.T) {
		t.Parallel()

		assert.True(t, token.ValidAt(base))
	})

	t.Run("just before the margin cutoff", func(t *testing.T) {
		t.Parallel()

		cutoff := token.ExpiresAt.Add(-constants.TokenExpirySafetyMargin)

		assert.True(t, token.ValidAt(cutoff.Add(-time.Second)))
	})

	t.Run("exactly at the margin cutoff", func(t *testing.T) {
		t.Parallel()

		cutoff := token.ExpiresAt.Add(-constants.TokenExpirySafetyMargin)

		assert.False(t, token.ValidAt(cutoff))
	})

	t.Run("past expiry", func(t *testing.T) {
		t.Parallel()

		assert.False(t, token.ValidAt(token.ExpiresAt.Add(time.Minute)))
	})
}

func TestTokenStore(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	assert.Nil(t, store.Get())

	token := &auth.Token{AccessToken: "abc"}
	store.Set(token)
	assert.Equal(t, token, store.Get())

	store.Clear()
	assert.Nil(t, store.Get())
}
