package constants

import "time"

// API endpoint.
const (
	// APIScheme is the scheme used for every request.
	APIScheme = "https"

	// APIHost is the Lemon Squeezy API host.
	APIHost = "api.lemonsqueezy.com"

	// APIVersionPrefix prefixes every resource path.
	APIVersionPrefix = "/v1"

	// MediaTypeJSONAPI is sent as both Content-Type and Accept.
	MediaTypeJSONAPI = "application/vnd.api+json"

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "lemonsqueezy-go"
)

// Resource paths.
const (
	APIPathUsersMe       = APIVersionPrefix + "/users/me"
	APIPathOrders        = APIVersionPrefix + "/orders"
	APIPathStores        = APIVersionPrefix + "/stores"
	APIPathProducts      = APIVersionPrefix + "/products"
	APIPathVariants      = APIVersionPrefix + "/variants"
	APIPathFiles         = APIVersionPrefix + "/files"
	APIPathOrderItems    = APIVersionPrefix + "/order-items"
	APIPathSubscriptions = APIVersionPrefix + "/subscriptions"
)

// Query parameter names.
const (
	QueryPageSize   = "page[size]"
	QueryPageNumber = "page[number]"
	QueryInclude    = "include"

	FilterStoreID   = "filter[store_id]"
	FilterProductID = "filter[product_id]"
	FilterVariantID = "filter[variant_id]"
	FilterOrderID   = "filter[order_id]"
)

// HTTP timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Pagination.
const (
	// DefaultPageSize is used when a page number is requested without a size.
	DefaultPageSize = 10

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 100
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Output formats and display.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	// JSONIndentSize is the indent width for json and yaml output.
	JSONIndentSize = 2

	// NotAvailable is shown when a value is missing.
	NotAvailable = "N/A"

	// RedactedValue replaces secrets in logs and output.
	RedactedValue = "[REDACTED]"

	// TimeFormat is used for timestamps in table output.
	TimeFormat = "2006-01-02 15:04:05"
)

// CLI configuration.
const (
	ConfigDirName  = ".lsq"
	ConfigFileName = "config"
	ConfigFileType = "yml"
	EnvPrefix      = "LSQ"

	ConfigKeyAPIKey   = "api_key"
	ConfigKeyBaseURL  = "base_url"
	ConfigKeyOutput   = "output"
	ConfigKeyVerbose  = "verbose"
	ConfigKeyLogLevel = "log_level"
)
