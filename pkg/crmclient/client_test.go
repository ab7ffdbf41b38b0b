package crmclient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
	"github.com/alfawave-io/alfacrm/pkg/crmclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := crmclient.New(context.Background(), nil)
		assert.ErrorIs(t, err, alfacrm.ErrConfigRequired)
	})

	t.Run("missing hostname", func(t *testing.T) {
		t.Parallel()

		_, err := crmclient.New(context.Background(), &alfacrm.Config{
			Email:  "user@example.com",
			APIKey: "key",
		})
		assert.ErrorIs(t, err, alfacrm.ErrHostnameRequired)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		_, err := crmclient.New(context.Background(), &alfacrm.Config{
			Hostname: "school.example.com",
			Email:    "user@example.com",
		})
		assert.ErrorIs(t, err, alfacrm.ErrCredentialsRequired)

		_, err = crmclient.New(context.Background(), &alfacrm.Config{
			Hostname: "school.example.com",
			APIKey:   "key",
		})
		assert.ErrorIs(t, err, alfacrm.ErrCredentialsRequired)
	})

	t.Run("valid config needs no network", func(t *testing.T) {
		t.Parallel()

		client, err := crmclient.New(context.Background(), &alfacrm.Config{
			Hostname: "school.example.com/",
			Email:    "user@example.com",
			APIKey:   "key",
		})
		require.NoError(t, err)
		require.NotNil(t, client)

		assert.Equal(t, 0, client.Branch())
		client.SetBranch(4)
		assert.Equal(t, 4, client.Branch())
		assert.Len(t, client.Resources(), 24)
	})
}

func TestNewWithCredentials(t *testing.T) {
	t.Parallel()

	client, err := crmclient.NewWithCredentials(context.Background(), "http://localhost:8080", "user@example.com", "key")
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = crmclient.NewWithCredentials(context.Background(), "", "user@example.com", "key")
	assert.ErrorIs(t, err, alfacrm.ErrHostnameRequired)
}
