package lsclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lsclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	client, err := lsclient.New(&lemonsqueezy.Config{APIKey: "key"})
	require.NoError(t, err)
	assert.NotNil(t, client)

	client, err = lsclient.New(nil)
	require.ErrorIs(t, err, lemonsqueezy.ErrConfigRequired)
	assert.Nil(t, client)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := lsclient.NewWithAPIKey("key")
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = lsclient.NewWithAPIKey("")
	require.ErrorIs(t, err, lemonsqueezy.ErrAPIKeyRequired)
}

func TestNewWithBaseURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/users/me", request.URL.Path)
		assert.Equal(t, "Bearer key", request.Header.Get("Authorization"))

		writer.Header().Set("Content-Type", "application/vnd.api+json")
		_, _ = writer.Write([]byte(`{"data": {"type": "users", "id": "1", "attributes": {"name": "Darlene"}}}`))
	}))
	defer server.Close()

	client, err := lsclient.NewWithBaseURL(server.URL, "key")
	require.NoError(t, err)

	me, err := client.Users().Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Darlene", me.Data.Attributes.Name)

	_, err = lsclient.NewWithBaseURL("ftp://example.com", "key")
	require.ErrorIs(t, err, lemonsqueezy.ErrInvalidBaseURL)
}
