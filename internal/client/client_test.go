package client

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *lemonsqueezy.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: lemonsqueezy.ErrConfigRequired,
		},
		{
			name:    "missing api key",
			config:  &lemonsqueezy.Config{},
			wantErr: lemonsqueezy.ErrAPIKeyRequired,
		},
		{
			name:    "relative base url",
			config:  &lemonsqueezy.Config{APIKey: testAPIKey, BaseURL: "/v1"},
			wantErr: lemonsqueezy.ErrInvalidBaseURL,
		},
		{
			name:    "unsupported scheme",
			config:  &lemonsqueezy.Config{APIKey: testAPIKey, BaseURL: "ftp://example.com"},
			wantErr: lemonsqueezy.ErrInvalidBaseURL,
		},
		{
			name:    "unparseable base url",
			config:  &lemonsqueezy.Config{APIKey: testAPIKey, BaseURL: "http://[::1"},
			wantErr: lemonsqueezy.ErrInvalidBaseURL,
		},
		{
			name:   "defaults",
			config: &lemonsqueezy.Config{APIKey: testAPIKey},
		},
		{
			name: "all options",
			config: &lemonsqueezy.Config{
				APIKey:     testAPIKey,
				BaseURL:    "http://localhost:8080",
				Timeout:    5 * time.Second,
				UserAgent:  "test-agent",
				Debug:      true,
				HTTPClient: &http.Client{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := New(tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, client)
		})
	}
}

func TestParseBaseURL(t *testing.T) {
	t.Parallel()

	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "https://api.lemonsqueezy.com", u.String())

	u, err = parseBaseURL("http://127.0.0.1:9000/ignored/path?x=1")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", u.String())
}

func TestClient_ResourceClients(t *testing.T) {
	t.Parallel()

	client, err := New(&lemonsqueezy.Config{APIKey: testAPIKey})
	require.NoError(t, err)

	assert.NotNil(t, client.Users())
	assert.NotNil(t, client.Stores())
	assert.NotNil(t, client.Orders())
	assert.NotNil(t, client.OrderItems())
	assert.NotNil(t, client.Products())
	assert.NotNil(t, client.Variants())
	assert.NotNil(t, client.Files())
	assert.NotNil(t, client.Subscriptions())
}

func TestNew_KeepsCallerHTTPClient(t *testing.T) {
	t.Parallel()

	shared := &http.Client{}

	_, err := New(&lemonsqueezy.Config{APIKey: testAPIKey, HTTPClient: shared, Timeout: 3 * time.Second})
	require.NoError(t, err)
	assert.Zero(t, shared.Timeout)
}
