package lemonsqueezy

import (
	"encoding/json"
	"time"
)

// Resource type names as they appear in the "type" member.
const (
	TypeUsers         = "users"
	TypeStores        = "stores"
	TypeOrders        = "orders"
	TypeOrderItems    = "order-items"
	TypeProducts      = "products"
	TypeVariants      = "variants"
	TypeFiles         = "files"
	TypeSubscriptions = "subscriptions"
)

// User is the authenticated account.
type User = Resource[UserAttributes]

// UserAttributes are the attributes of a user.
type UserAttributes struct {
	Name            string     `json:"name"              yaml:"name"`
	Email           string     `json:"email"             yaml:"email"`
	Color           string     `json:"color"             yaml:"color"`
	AvatarURL       string     `json:"avatar_url"        yaml:"avatar_url"`
	HasCustomAvatar bool       `json:"has_custom_avatar" yaml:"has_custom_avatar"`
	CreatedAt       *time.Time `json:"createdAt"         yaml:"created_at"`
	UpdatedAt       *time.Time `json:"updatedAt"         yaml:"updated_at"`
}

// Store is a Lemon Squeezy store.
type Store = Resource[StoreAttributes]

// StoreAttributes are the attributes of a store.
type StoreAttributes struct {
	Name             string     `json:"name"               yaml:"name"`
	Slug             string     `json:"slug"               yaml:"slug"`
	Domain           string     `json:"domain"             yaml:"domain"`
	URL              string     `json:"url"                yaml:"url"`
	AvatarURL        string     `json:"avatar_url"         yaml:"avatar_url"`
	Plan             string     `json:"plan"               yaml:"plan"`
	Country          string     `json:"country"            yaml:"country"`
	CountryNicename  string     `json:"country_nicename"   yaml:"country_nicename"`
	Currency         string     `json:"currency"           yaml:"currency"`
	TotalSales       int        `json:"total_sales"        yaml:"total_sales"`
	TotalRevenue     int        `json:"total_revenue"      yaml:"total_revenue"`
	ThirtyDaySales   int        `json:"thirty_day_sales"   yaml:"thirty_day_sales"`
	ThirtyDayRevenue int        `json:"thirty_day_revenue" yaml:"thirty_day_revenue"`
	CreatedAt        *time.Time `json:"created_at"         yaml:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"         yaml:"updated_at"`
}

// Order is a single purchase.
type Order = Resource[OrderAttributes]

// OrderAttributes are the attributes of an order. Money amounts are in cents.
type OrderAttributes struct {
	StoreID                int               `json:"store_id"                 yaml:"store_id"`
	CustomerID             int               `json:"customer_id"              yaml:"customer_id"`
	Identifier             string            `json:"identifier"               yaml:"identifier"`
	OrderNumber            int               `json:"order_number"             yaml:"order_number"`
	UserName               string            `json:"user_name"                yaml:"user_name"`
	UserEmail              string            `json:"user_email"               yaml:"user_email"`
	Currency               string            `json:"currency"                 yaml:"currency"`
	CurrencyRate           string            `json:"currency_rate"            yaml:"currency_rate"`
	Subtotal               int               `json:"subtotal"                 yaml:"subtotal"`
	DiscountTotal          int               `json:"discount_total"           yaml:"discount_total"`
	Tax                    int               `json:"tax"                      yaml:"tax"`
	Total                  int               `json:"total"                    yaml:"total"`
	SubtotalUSD            int               `json:"subtotal_usd"             yaml:"subtotal_usd"`
	DiscountTotalUSD       int               `json:"discount_total_usd"       yaml:"discount_total_usd"`
	TaxUSD                 int               `json:"tax_usd"                  yaml:"tax_usd"`
	TotalUSD               int               `json:"total_usd"                yaml:"total_usd"`
	TaxName                string            `json:"tax_name"                 yaml:"tax_name"`
	TaxRate                string            `json:"tax_rate"                 yaml:"tax_rate"`
	Status                 string            `json:"status"                   yaml:"status"`
	StatusFormatted        string            `json:"status_formatted"         yaml:"status_formatted"`
	Refunded               bool              `json:"refunded"                 yaml:"refunded"`
	RefundedAt             *time.Time        `json:"refunded_at"              yaml:"refunded_at"`
	SubtotalFormatted      string            `json:"subtotal_formatted"       yaml:"subtotal_formatted"`
	DiscountTotalFormatted string            `json:"discount_total_formatted" yaml:"discount_total_formatted"`
	TaxFormatted           string            `json:"tax_formatted"            yaml:"tax_formatted"`
	TotalFormatted         string            `json:"total_formatted"          yaml:"total_formatted"`
	FirstOrderItem         *OrderItemSummary `json:"first_order_item"         yaml:"first_order_item"`
	URLs                   map[string]string `json:"urls"                     yaml:"urls"`
	CreatedAt              *time.Time        `json:"created_at"               yaml:"created_at"`
	UpdatedAt              *time.Time        `json:"updated_at"               yaml:"updated_at"`
	TestMode               bool              `json:"test_mode"                yaml:"test_mode"`
}

// OrderItemSummary is the first line item embedded in an order.
type OrderItemSummary struct {
	ID          int    `json:"id"           yaml:"id"`
	OrderID     int    `json:"order_id"     yaml:"order_id"`
	ProductID   int    `json:"product_id"   yaml:"product_id"`
	VariantID   int    `json:"variant_id"   yaml:"variant_id"`
	ProductName string `json:"product_name" yaml:"product_name"`
	VariantName string `json:"variant_name" yaml:"variant_name"`
	Price       int    `json:"price"        yaml:"price"`
	TestMode    bool   `json:"test_mode"    yaml:"test_mode"`
}

// OrderItem is a line item of an order.
type OrderItem = Resource[OrderItemAttributes]

// OrderItemAttributes are the attributes of an order item.
type OrderItemAttributes struct {
	OrderID     int        `json:"order_id"     yaml:"order_id"`
	ProductID   int        `json:"product_id"   yaml:"product_id"`
	VariantID   int        `json:"variant_id"   yaml:"variant_id"`
	ProductName string     `json:"product_name" yaml:"product_name"`
	VariantName string     `json:"variant_name" yaml:"variant_name"`
	Price       int        `json:"price"        yaml:"price"`
	Quantity    int        `json:"quantity"     yaml:"quantity"`
	CreatedAt   *time.Time `json:"created_at"   yaml:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"   yaml:"updated_at"`
	TestMode    bool       `json:"test_mode"    yaml:"test_mode"`
}

// Product is a sellable product of a store.
type Product = Resource[ProductAttributes]

// ProductAttributes are the attributes of a product.
type ProductAttributes struct {
	StoreID         int        `json:"store_id"          yaml:"store_id"`
	Name            string     `json:"name"              yaml:"name"`
	Slug            string     `json:"slug"              yaml:"slug"`
	Description     string     `json:"description"       yaml:"description"`
	Status          string     `json:"status"            yaml:"status"`
	StatusFormatted string     `json:"status_formatted"  yaml:"status_formatted"`
	ThumbURL        string     `json:"thumb_url"         yaml:"thumb_url"`
	LargeThumbURL   string     `json:"large_thumb_url"   yaml:"large_thumb_url"`
	Price           int        `json:"price"             yaml:"price"`
	PriceFormatted  string     `json:"price_formatted"   yaml:"price_formatted"`
	FromPrice       *int       `json:"from_price"        yaml:"from_price"`
	ToPrice         *int       `json:"to_price"          yaml:"to_price"`
	PayWhatYouWant  bool       `json:"pay_what_you_want" yaml:"pay_what_you_want"`
	BuyNowURL       string     `json:"buy_now_url"       yaml:"buy_now_url"`
	CreatedAt       *time.Time `json:"created_at"        yaml:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"        yaml:"updated_at"`
	TestMode        bool       `json:"test_mode"         yaml:"test_mode"`
}

// Variant is a priced option of a product.
type Variant = Resource[VariantAttributes]

// VariantAttributes are the attributes of a variant.
type VariantAttributes struct {
	ProductID                int        `json:"product_id"                  yaml:"product_id"`
	Name                     string     `json:"name"                        yaml:"name"`
	Slug                     string     `json:"slug"                        yaml:"slug"`
	Description              string     `json:"description"                 yaml:"description"`
	Price                    int        `json:"price"                       yaml:"price"`
	IsSubscription           bool       `json:"is_subscription"             yaml:"is_subscription"`
	Interval                 *string    `json:"interval"                    yaml:"interval"`
	IntervalCount            *int       `json:"interval_count"              yaml:"interval_count"`
	HasFreeTrial             bool       `json:"has_free_trial"              yaml:"has_free_trial"`
	TrialInterval            string     `json:"trial_interval"              yaml:"trial_interval"`
	TrialIntervalCount       int        `json:"trial_interval_count"        yaml:"trial_interval_count"`
	PayWhatYouWant           bool       `json:"pay_what_you_want"           yaml:"pay_what_you_want"`
	MinPrice                 int        `json:"min_price"                   yaml:"min_price"`
	SuggestedPrice           int        `json:"suggested_price"             yaml:"suggested_price"`
	HasLicenseKeys           bool       `json:"has_license_keys"            yaml:"has_license_keys"`
	LicenseActivationLimit   int        `json:"license_activation_limit"    yaml:"license_activation_limit"`
	IsLicenseLimitUnlimited  bool       `json:"is_license_limit_unlimited"  yaml:"is_license_limit_unlimited"`
	LicenseLengthValue       int        `json:"license_length_value"        yaml:"license_length_value"`
	LicenseLengthUnit        string     `json:"license_length_unit"         yaml:"license_length_unit"`
	IsLicenseLengthUnlimited bool       `json:"is_license_length_unlimited" yaml:"is_license_length_unlimited"`
	Sort                     int        `json:"sort"                        yaml:"sort"`
	Status                   string     `json:"status"                      yaml:"status"`
	StatusFormatted          string     `json:"status_formatted"            yaml:"status_formatted"`
	CreatedAt                *time.Time `json:"created_at"                  yaml:"created_at"`
	UpdatedAt                *time.Time `json:"updated_at"                  yaml:"updated_at"`
	TestMode                 bool       `json:"test_mode"                   yaml:"test_mode"`
}

// File is a downloadable file attached to a variant.
type File = Resource[FileAttributes]

// FileAttributes are the attributes of a file.
type FileAttributes struct {
	VariantID     int        `json:"variant_id"     yaml:"variant_id"`
	Identifier    string     `json:"identifier"     yaml:"identifier"`
	Name          string     `json:"name"           yaml:"name"`
	Extension     string     `json:"extension"      yaml:"extension"`
	DownloadURL   string     `json:"download_url"   yaml:"download_url"`
	Size          int64      `json:"size"           yaml:"size"`
	SizeFormatted string     `json:"size_formatted" yaml:"size_formatted"`
	Version       string     `json:"version"        yaml:"version"`
	Sort          int        `json:"sort"           yaml:"sort"`
	Status        string     `json:"status"         yaml:"status"`
	CreatedAt     *time.Time `json:"createdAt"      yaml:"created_at"`
	UpdatedAt     *time.Time `json:"updatedAt"      yaml:"updated_at"`
	TestMode      bool       `json:"test_mode"      yaml:"test_mode"`
}

// Subscription is a recurring payment for a subscription variant.
type Subscription = Resource[SubscriptionAttributes]

// SubscriptionAttributes are the attributes of a subscription.
type SubscriptionAttributes struct {
	StoreID         int                `json:"store_id"         yaml:"store_id"`
	CustomerID      int                `json:"customer_id"      yaml:"customer_id"`
	OrderID         int                `json:"order_id"         yaml:"order_id"`
	OrderItemID     int                `json:"order_item_id"    yaml:"order_item_id"`
	ProductID       int                `json:"product_id"       yaml:"product_id"`
	VariantID       int                `json:"variant_id"       yaml:"variant_id"`
	ProductName     string             `json:"product_name"     yaml:"product_name"`
	VariantName     string             `json:"variant_name"     yaml:"variant_name"`
	UserName        string             `json:"user_name"        yaml:"user_name"`
	UserEmail       string             `json:"user_email"       yaml:"user_email"`
	Status          string             `json:"status"           yaml:"status"`
	StatusFormatted string             `json:"status_formatted" yaml:"status_formatted"`
	CardBrand       string             `json:"card_brand"       yaml:"card_brand"`
	CardLastFour    string             `json:"card_last_four"   yaml:"card_last_four"`
	Pause           *SubscriptionPause `json:"pause"            yaml:"pause"`
	Cancelled       bool               `json:"cancelled"        yaml:"cancelled"`
	TrialEndsAt     *time.Time         `json:"trial_ends_at"    yaml:"trial_ends_at"`
	BillingAnchor   int                `json:"billing_anchor"   yaml:"billing_anchor"`
	URLs            map[string]string  `json:"urls"             yaml:"urls"`
	RenewsAt        *time.Time         `json:"renews_at"        yaml:"renews_at"`
	EndsAt          *time.Time         `json:"ends_at"          yaml:"ends_at"`
	CreatedAt       *time.Time         `json:"created_at"       yaml:"created_at"`
	UpdatedAt       *time.Time         `json:"updated_at"       yaml:"updated_at"`
	TestMode        bool               `json:"test_mode"        yaml:"test_mode"`
}

// Pause modes.
const (
	PauseModeVoid = "void"
	PauseModeFree = "free"
)

// SubscriptionPause describes how payment collection is paused.
type SubscriptionPause struct {
	Mode      string     `json:"mode"                 yaml:"mode"`
	ResumesAt *time.Time `json:"resumes_at,omitempty" yaml:"resumes_at,omitempty"`
}

// SubscriptionUpdate holds the writable attributes of a subscription.
// Nil fields are left unchanged.
type SubscriptionUpdate struct {
	VariantID          *int               `json:"variant_id,omitempty"          yaml:"variant_id,omitempty"`
	Pause              *SubscriptionPause `json:"pause,omitempty"               yaml:"pause,omitempty"`
	Cancelled          *bool              `json:"cancelled,omitempty"           yaml:"cancelled,omitempty"`
	BillingAnchor      *int               `json:"billing_anchor,omitempty"      yaml:"billing_anchor,omitempty"`
	InvoiceImmediately *bool              `json:"invoice_immediately,omitempty" yaml:"invoice_immediately,omitempty"`
	DisableProrations  *bool              `json:"disable_prorations,omitempty"  yaml:"disable_prorations,omitempty"`

	// ClearPause sends "pause": null, which resumes payment collection.
	// It takes precedence over Pause.
	ClearPause bool `json:"-" yaml:"-"`
}

// MarshalJSON implements json.Marshaler.
func (u SubscriptionUpdate) MarshalJSON() ([]byte, error) {
	type attributes SubscriptionUpdate

	if !u.ClearPause {
		return json.Marshal(attributes(u))
	}

	return json.Marshal(struct {
		attributes
		Pause *SubscriptionPause `json:"pause"`
	}{attributes: attributes(u)})
}

// UpdateDocument is the request body of PATCH endpoints.
type UpdateDocument[A any] struct {
	Data UpdateData[A] `json:"data"`
}

// UpdateData identifies the resource being updated.
type UpdateData[A any] struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes A      `json:"attributes"`
}
