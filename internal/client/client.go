package client

import (
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/lemonsqueezy/internal/http"
	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// Client implements the lemonsqueezy.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL

	users         *UsersClient
	stores        *StoresClient
	orders        *OrdersClient
	orderItems    *OrderItemsClient
	products      *ProductsClient
	variants      *VariantsClient
	files         *FilesClient
	subscriptions *SubscriptionsClient
}

var _ lemonsqueezy.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *lemonsqueezy.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithLogger(config.Logger),
		http.WithDebug(config.Debug),
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// parseBaseURL returns the scheme and host requests go to.
func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return route.DefaultBaseURL(), nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lemonsqueezy.ErrInvalidBaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", lemonsqueezy.ErrInvalidBaseURL, raw)
	}

	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}

// New creates a new API client.
func New(config *lemonsqueezy.Config) (*Client, error) {
	if config == nil {
		return nil, lemonsqueezy.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, lemonsqueezy.ErrAPIKeyRequired
	}

	baseURL, err := parseBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient: http.NewClient(config.APIKey, createHTTPClientOptions(config)...),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	req := &requester{
		httpClient: c.httpClient,
		baseURL:    c.baseURL,
	}

	c.users = newUsersClient(req)
	c.stores = newStoresClient(req)
	c.orders = newOrdersClient(req)
	c.orderItems = newOrderItemsClient(req)
	c.products = newProductsClient(req)
	c.variants = newVariantsClient(req)
	c.files = newFilesClient(req)
	c.subscriptions = newSubscriptionsClient(req)
}

// Users implements lemonsqueezy.Client.Users.
func (c *Client) Users() lemonsqueezy.UsersClient { return c.users }

// Stores implements lemonsqueezy.Client.Stores.
func (c *Client) Stores() lemonsqueezy.StoresClient { return c.stores }

// Orders implements lemonsqueezy.Client.Orders.
func (c *Client) Orders() lemonsqueezy.OrdersClient { return c.orders }

// OrderItems implements lemonsqueezy.Client.OrderItems.
func (c *Client) OrderItems() lemonsqueezy.OrderItemsClient { return c.orderItems }

// Products implements lemonsqueezy.Client.Products.
func (c *Client) Products() lemonsqueezy.ProductsClient { return c.products }

// Variants implements lemonsqueezy.Client.Variants.
func (c *Client) Variants() lemonsqueezy.VariantsClient { return c.variants }

// Files implements lemonsqueezy.Client.Files.
func (c *Client) Files() lemonsqueezy.FilesClient { return c.files }

// Subscriptions implements lemonsqueezy.Client.Subscriptions.
func (c *Client) Subscriptions() lemonsqueezy.SubscriptionsClient { return c.subscriptions }
