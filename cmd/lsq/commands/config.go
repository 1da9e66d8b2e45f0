package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lsclient"
)

// Config is the persisted CLI configuration.
type Config struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// defaultConfigPath returns ~/.lsq/config.yml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// configFilePath returns the file in use, or the default location.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	return defaultConfigPath()
}

// readConfigFile loads the config at path. A missing file is an empty config.
func readConfigFile(path string) (*Config, error) {
	// #nosec G304 -- path is the user's own config file
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// writeConfigFile stores config at path, readable by the owner only.
func writeConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	err = os.Chmod(path, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to restrict config file permissions: %w", err)
	}

	return nil
}

// CreateClient builds an API client from flags, environment and config file.
func CreateClient() (lemonsqueezy.Client, error) {
	apiKey := viper.GetString(constants.ConfigKeyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKey
	}

	return newClient(apiKey)
}

func newClient(apiKey string) (lemonsqueezy.Client, error) {
	client, err := lsclient.New(&lemonsqueezy.Config{
		APIKey:    apiKey,
		BaseURL:   viper.GetString(constants.ConfigKeyBaseURL),
		UserAgent: userAgent,
		Debug:     viper.GetBool(constants.ConfigKeyVerbose),
		Logger:    setupLogger(viper.GetString(constants.ConfigKeyLogLevel), viper.GetBool(constants.ConfigKeyVerbose)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
