// Package crmclient provides the main entry point for creating ALFA CRM API clients
package crmclient

import (
	"context"
	"strings"

	"github.com/alfawave-io/alfacrm/internal/client"
	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
)

// New creates a new API client for the configured account.
//
// The hostname is normalized by trimming a trailing slash and adding
// "https://" when no scheme is present. No network traffic happens here;
// authentication is performed lazily on the first request.
func New(ctx context.Context, config *alfacrm.Config) (alfacrm.Client, error) {
	if config == nil {
		return nil, alfacrm.ErrConfigRequired
	}

	if config.Hostname == "" {
		return nil, alfacrm.ErrHostnameRequired
	}

	if config.Email == "" || config.APIKey == "" {
		return nil, alfacrm.ErrCredentialsRequired
	}

	baseURL := strings.TrimSuffix(config.Hostname, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return client.New(baseURL, config), nil
}

// NewWithCredentials creates a client from the three required settings.
func NewWithCredentials(ctx context.Context, hostname, email, apiKey string) (alfacrm.Client, error) {
	return New(ctx, &alfacrm.Config{
		Hostname: hostname,
		Email:    email,
		APIKey:   apiKey,
	})
}
