package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

const testAPIKey = "test-key"

// newTestClient starts a server running handler and returns a client bound to it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&lemonsqueezy.Config{
		APIKey:  testAPIKey,
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)

	return client
}

// writeDocument writes a JSON:API body with the given status.
func writeDocument(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/vnd.api+json")
	writer.WriteHeader(status)
	_, _ = writer.Write([]byte(body))
}

// resourceDocument is a minimal single-resource document.
func resourceDocument(resourceType, id string) string {
	return `{"data": {"type": "` + resourceType + `", "id": "` + id + `", "attributes": {}}}`
}

// listDocument is a minimal one-element list document on page 1 of 1.
func listDocument(resourceType, id string) string {
	return `{
		"meta": {"page": {"currentPage": 1, "from": 1, "lastPage": 1, "perPage": 10, "to": 1, "total": 1}},
		"data": [{"type": "` + resourceType + `", "id": "` + id + `", "attributes": {}}]
	}`
}
