package lemonsqueezy

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// UsersClient exposes the authenticated user.
type UsersClient interface {
	Me(ctx context.Context) (*Response[User, Included], error)
}

// StoresClient reads stores.
type StoresClient interface {
	Get(ctx context.Context, id string, opts *GetOptions) (*Response[Store, Included], error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Store, Included], error)
}

// OrdersClient reads orders.
type OrdersClient interface {
	Get(ctx context.Context, id string, opts *GetOptions) (*Response[Order, Included], error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Order, Included], error)
	ListForStore(ctx context.Context, storeID string, opts *ListOptions) (*ListResponse[Order, Included], error)
}

// OrderItemsClient reads order items.
type OrderItemsClient interface {
	Get(ctx context.Context, id string, opts *GetOptions) (*Response[OrderItem, Included], error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[OrderItem, Included], error)
	ListForOrder(ctx context.Context, orderID string, opts *ListOptions) (*ListResponse[OrderItem, Included], error)
}

// ProductsClient reads products.
type ProductsClient interface {
	Get(ctx context.Context, id string, opts *GetOptions) (*Response[Product, Included], error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Product, Included], error)
	ListForStore(ctx context.Context, storeID string, opts *ListOptions) (*ListResponse[Product, Included], error)
}

// VariantsClient reads variants.
type VariantsClient interface {
	Get(ctx context.Context, id string, opts *GetOptions) (*Response[Variant, Included], error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Variant, Included], error)
	ListForProduct(ctx context.Context, productID string, opts *ListOptions) (*ListResponse[Variant, Included], error)
}

// FilesClient reads files.
type FilesClient interface {
	Get(ctx context.Context, id string, opts *GetOptions) (*Response[File, Included], error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[File, Included], error)
	ListForVariant(ctx context.Context, variantID string, opts *ListOptions) (*ListResponse[File, Included], error)
}

// SubscriptionsClient reads and manages subscriptions.
type SubscriptionsClient interface {
	Get(ctx context.Context, id string, opts *GetOptions) (*Response[Subscription, Included], error)
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Subscription, Included], error)
	ListForStore(ctx context.Context, storeID string, opts *ListOptions) (*ListResponse[Subscription, Included], error)
	Update(ctx context.Context, id string, update *SubscriptionUpdate) (*Response[Subscription, Included], error)
	Cancel(ctx context.Context, id string) (*Response[Subscription, Included], error)
}

// Client provides access to every resource client.
type Client interface {
	Users() UsersClient
	Stores() StoresClient
	Orders() OrdersClient
	OrderItems() OrderItemsClient
	Products() ProductsClient
	Variants() VariantsClient
	Files() FilesClient
	Subscriptions() SubscriptionsClient
}

// Config represents client configuration.
//
// APIKey is required and is sent as a Bearer token on every request. It is
// held for the lifetime of the client and never logged.
//
// BaseURL overrides scheme and host (https://api.lemonsqueezy.com); paths
// always start at /v1. It exists for tests and egress proxies.
type Config struct {
	APIKey string

	// Optional configurations
	BaseURL string
	// Timeout bounds a whole round trip. Zero uses the default of 30s;
	// per-call deadlines should come from the context.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug logs every request and response at debug level.
	Debug bool
	// Logger receives transport logs. The zero value discards them.
	Logger zerolog.Logger
	// HTTPClient replaces the underlying *http.Client.
	HTTPClient *http.Client
}
