package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfawave-io/alfacrm/internal/auth"
	"github.com/alfawave-io/alfacrm/internal/constants"
	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
)

func newLoginServer(t *testing.T, logins *int32, token string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		atomic.AddInt32(logins, 1)

		assert.Equal(t, "/v2api/auth/login", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])
		assert.Equal(t, "secret-key", body["api_key"])

		_ = json.NewEncoder(writer).Encode(map[string]string{"token": token})
	}))
}

func TestLoginTokenManager_Token(t *testing.T) {
	t.Parallel()
	t.Run("logs in and caches the token", func(t *testing.T) {
		t.Parallel()

		var logins int32

		server := newLoginServer(t, &logins, "issued-token")
		defer server.Close()

		manager := auth.NewLoginTokenManager(server.URL, "user@example.com", "secret-key")

		token, err := manager.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "issued-token", token)

		token, err = manager.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "issued-token", token)

		assert.Equal(t, int32(1), atomic.LoadInt32(&logins))
	})

	t.Run("expired token triggers one new login", func(t *testing.T) {
		t.Parallel()

		var logins int32

		server := newLoginServer(t, &logins, "refreshed")
		defer server.Close()

		manager := auth.NewLoginTokenManager(server.URL, "user@example.com", "secret-key")
		manager.SetToken("stale", time.Now().Add(-time.Minute))

		token, err := manager.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "refreshed", token)
		assert.Equal(t, int32(1), atomic.LoadInt32(&logins))
	})

	t.Run("token crossing the safety margin triggers a login", func(t *testing.T) {
		t.Parallel()

		var logins int32

		server := newLoginServer(t, &logins, "clocked")
		defer server.Close()

		var (
			mu  sync.Mutex
			now = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
		)

		clock := func() time.Time {
			mu.Lock()
			defer mu.Unlock()

			return now
		}

		manager := auth.NewLoginTokenManager(server.URL, "user@example.com", "secret-key",
			auth.WithClock(clock))

		_, err := manager.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&logins))

		mu.Lock()
		now = now.Add(constants.TokenTTL - constants.TokenExpirySafetyMargin - time.Second)
		mu.Unlock()

		_, err = manager.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&logins))

		mu.Lock()
		now = now.Add(2 * time.Second)
		mu.Unlock()

		_, err = manager.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&logins))
	})

	t.Run("invalidate forces a login", func(t *testing.T) {
		t.Parallel()

		var logins int32

		server := newLoginServer(t, &logins, "second")
		defer server.Close()

		manager := auth.NewLoginTokenManager(server.URL, "user@example.com", "secret-key")
		manager.SetToken("first", time.Now().Add(time.Hour))

		manager.Invalidate()

		token, err := manager.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "second", token)
		assert.Equal(t, int32(1), atomic.LoadInt32(&logins))
	})

	t.Run("concurrent callers share one login", func(t *testing.T) {
		t.Parallel()

		var logins int32

		server := newLoginServer(t, &logins, "shared")
		defer server.Close()

		manager := auth.NewLoginTokenManager(server.URL, "user@example.com", "secret-key")

		var group sync.WaitGroup
		for i := 0; i < 10; i++ {
			group.Add(1)

			go func() {
				defer group.Done()

				token, err := manager.Token(context.Background())
				assert.NoError(t, err)
				assert.Equal(t, "shared", token)
			}()
		}

		group.Wait()
		assert.Equal(t, int32(1), atomic.LoadInt32(&logins))
	})

	t.Run("rejected credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"message":"invalid api key"}`))
		}))
		defer server.Close()

		manager := auth.NewLoginTokenManager(server.URL, "user@example.com", "wrong")

		_, err := manager.Token(context.Background())
		require.Error(t, err)
		assert.True(t, alfacrm.IsAuthentication(err))
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("login response without a token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		manager := auth.NewLoginTokenManager(server.URL, "user@example.com", "secret-key")

		_, err := manager.Token(context.Background())
		require.Error(t, err)
		assert.True(t, alfacrm.IsAuthentication(err))
		assert.Contains(t, err.Error(), alfacrm.UnknownErrorMessage)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		manager := auth.NewLoginTokenManager(server.URL, "user@example.com", "secret-key")

		_, err := manager.Token(context.Background())
		require.Error(t, err)
		assert.True(t, alfacrm.IsConnection(err))
	})
}
