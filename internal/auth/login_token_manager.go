package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/alfawave-io/alfacrm/internal/constants"
	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
)

// TokenManager supplies session tokens to the HTTP layer.
type TokenManager interface {
	// Token returns a valid token, logging in when none is held or the
	// held one is near expiry.
	Token(ctx context.Context) (string, error)

	// Invalidate discards the held token so the next Token call logs in
	// again. Used after the server rejects a token with 401.
	Invalidate()

	// SetToken manually installs a token, mainly for tests and tooling.
	SetToken(token string, expiresAt time.Time)
}

// LoginTokenManager acquires tokens from the login endpoint using account
// credentials. Concurrent callers share one login; the mutex makes the
// check-then-login sequence atomic.
type LoginTokenManager struct {
	loginURL   string
	email      string
	apiKey     string
	httpClient *http.Client
	store      *TokenStore
	mu         sync.Mutex
	now        func() time.Time
}

// LoginOption configures a LoginTokenManager.
type LoginOption func(*LoginTokenManager)

// WithHTTPClient sets the HTTP client used for login requests.
func WithHTTPClient(client *http.Client) LoginOption {
	return func(m *LoginTokenManager) {
		m.httpClient = client
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) LoginOption {
	return func(m *LoginTokenManager) {
		m.now = now
	}
}

// NewLoginTokenManager creates a token manager for the given API base URL and
// account credentials.
func NewLoginTokenManager(baseURL, email, apiKey string, opts ...LoginOption) *LoginTokenManager {
	m := &LoginTokenManager{
		loginURL: baseURL + constants.AuthLoginPath,
		email:    email,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: constants.ShortHTTPTimeout,
		},
		store: NewTokenStore(),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Token returns a valid token, logging in when necessary.
func (m *LoginTokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := m.store.Get()
	if token.ValidAt(m.now()) {
		return token.AccessToken, nil
	}

	fresh, err := m.login(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(fresh)

	return fresh.AccessToken, nil
}

// Invalidate discards the held token.
func (m *LoginTokenManager) Invalidate() {
	m.store.Clear()
}

// SetToken manually installs a token.
func (m *LoginTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}

type loginRequest struct {
	Email  string `json:"email"`
	APIKey string `json:"api_key"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (m *LoginTokenManager) login(ctx context.Context) (*Token, error) {
	payload, err := json.Marshal(loginRequest{Email: m.email, APIKey: m.apiKey})
	if err != nil {
		return nil, fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.loginURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building login request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, &alfacrm.ConnectionError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &alfacrm.ConnectionError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &alfacrm.AuthenticationError{Message: loginFailureMessage(body)}
	}

	var parsed loginResponse

	err = json.Unmarshal(body, &parsed)
	if err != nil || parsed.Token == "" {
		return nil, &alfacrm.AuthenticationError{Message: loginFailureMessage(body)}
	}

	return &Token{
		AccessToken: parsed.Token,
		ExpiresAt:   m.now().Add(constants.TokenTTL),
	}, nil
}

// loginFailureMessage extracts the server's message, falling back to the
// generic unknown-error text when the body carries none.
func loginFailureMessage(body []byte) string {
	var parsed map[string]interface{}

	if json.Unmarshal(body, &parsed) == nil {
		if msg, ok := parsed["message"].(string); ok && msg != "" {
			return msg
		}

		if msg, ok := parsed["error"].(string); ok && msg != "" {
			return msg
		}
	}

	return alfacrm.UnknownErrorMessage
}
