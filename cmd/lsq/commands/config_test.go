package commands

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
)

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".lsq", "config.yml")

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)

	err = writeConfigFile(path, &Config{APIKey: "secret", Output: "json"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	config, err = readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{APIKey: "secret", Output: "json"}, config)
}

func TestWriteConfigFile_RestrictsExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o644))
	require.NoError(t, os.Chmod(path, 0o644))

	err := writeConfigFile(path, &Config{APIKey: "secret", Output: "json"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())
}

func TestReadConfigFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: [unterminated"), 0o600))

	_, err := readConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestCreateClient(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		useViper(t, nil)

		_, err := CreateClient()
		require.ErrorIs(t, err, constants.ErrNoAPIKey)
	})

	t.Run("invalid base url", func(t *testing.T) {
		useViper(t, map[string]any{
			constants.ConfigKeyAPIKey:  "test-key",
			constants.ConfigKeyBaseURL: "not a url",
		})

		_, err := CreateClient()
		require.Error(t, err)
	})

	t.Run("configured", func(t *testing.T) {
		useViper(t, map[string]any{constants.ConfigKeyAPIKey: "test-key"})

		client, err := CreateClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestLoginLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	useViper(t, map[string]any{constants.ConfigKeyAPIKey: " new-key "})
	viper.SetConfigFile(path)

	out, err := execute(t, NewLoginCommand(), "--no-verify")
	require.NoError(t, err)
	assert.Contains(t, out, "API key saved")

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new-key", config.APIKey)

	out, err = execute(t, NewLogoutCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	config, err = readConfigFile(path)
	require.NoError(t, err)
	assert.Empty(t, config.APIKey)

	out, err = execute(t, NewLogoutCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

func TestLogin_Verifies(t *testing.T) {
	useServer(t, "table", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/users/me", request.URL.Path)
		assert.Equal(t, "Bearer test-key", request.Header.Get("Authorization"))

		writeDocument(writer, http.StatusOK, `{"data": {
			"type": "users", "id": "1",
			"attributes": {"name": "Darlene", "email": "darlene@example.com"}
		}}`)
	})

	path := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(path)

	out, err := execute(t, NewLoginCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Darlene <darlene@example.com>")

	config, err := readConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key", config.APIKey)
}

func TestLogin_RejectedKeyIsNotSaved(t *testing.T) {
	useServer(t, "table", func(writer http.ResponseWriter, request *http.Request) {
		writeDocument(writer, http.StatusUnauthorized, `{"errors": [{"status": "401", "title": "Unauthenticated."}]}`)
	})

	path := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(path)

	_, err := execute(t, NewLoginCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to verify API key")

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
