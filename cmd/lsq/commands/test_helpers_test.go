package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
)

// useViper resets the global configuration to settings for the duration of
// the test. Tests calling it must not run in parallel.
func useViper(t *testing.T, settings map[string]any) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	for key, value := range settings {
		viper.Set(key, value)
	}
}

// useServer starts handler and points the CLI configuration at it.
func useServer(t *testing.T, output string, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	useViper(t, map[string]any{
		constants.ConfigKeyAPIKey:  "test-key",
		constants.ConfigKeyBaseURL: server.URL,
		constants.ConfigKeyOutput:  output,
	})
}

// execute runs cmd with args and returns what it printed.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	if args == nil {
		args = []string{}
	}

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeDocument(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/vnd.api+json")
	writer.WriteHeader(status)
	_, _ = writer.Write([]byte(body))
}
