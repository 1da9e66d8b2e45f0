package lsclient

import (
	"github.com/fivetwenty-io/lemonsqueezy/internal/client"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// New creates a new API client from config.
func New(config *lemonsqueezy.Config) (lemonsqueezy.Client, error) {
	c, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewWithAPIKey creates a new client that talks to the public API with apiKey.
func NewWithAPIKey(apiKey string) (lemonsqueezy.Client, error) {
	return New(&lemonsqueezy.Config{
		APIKey: apiKey,
	})
}

// NewWithBaseURL creates a new client that sends requests to baseURL instead
// of the public API host, for test servers and egress proxies.
func NewWithBaseURL(baseURL, apiKey string) (lemonsqueezy.Client, error) {
	return New(&lemonsqueezy.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
}
