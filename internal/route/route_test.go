package route_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		route route.Route
		path  string
		fixed []lemonsqueezy.QueryItem
	}{
		{"me", route.Me{}, "/v1/users/me", nil},
		{"orders", route.Orders{}, "/v1/orders", nil},
		{"order", route.Order{ID: "7"}, "/v1/orders/7", nil},
		{"stores", route.Stores{}, "/v1/stores", nil},
		{"store", route.Store{ID: "1"}, "/v1/stores/1", nil},
		{"products", route.Products{}, "/v1/products", nil},
		{"product", route.Product{ID: "2"}, "/v1/products/2", nil},
		{"variants", route.Variants{}, "/v1/variants", nil},
		{"variant", route.Variant{ID: "3"}, "/v1/variants/3", nil},
		{"files", route.Files{}, "/v1/files", nil},
		{"file", route.File{ID: "4"}, "/v1/files/4", nil},
		{"order items", route.OrderItems{}, "/v1/order-items", nil},
		{"order item", route.OrderItem{ID: "42"}, "/v1/order-items/42", nil},
		{"subscriptions", route.Subscriptions{}, "/v1/subscriptions", nil},
		{"subscription", route.Subscription{ID: "9"}, "/v1/subscriptions/9", nil},
		{
			"store orders", route.StoreOrders{StoreID: "1"}, "/v1/orders",
			[]lemonsqueezy.QueryItem{{Name: "filter[store_id]", Value: "1"}},
		},
		{
			"store products", route.StoreProducts{StoreID: "1"}, "/v1/products",
			[]lemonsqueezy.QueryItem{{Name: "filter[store_id]", Value: "1"}},
		},
		{
			"store subscriptions", route.StoreSubscriptions{StoreID: "1"}, "/v1/subscriptions",
			[]lemonsqueezy.QueryItem{{Name: "filter[store_id]", Value: "1"}},
		},
		{
			"product variants", route.ProductVariants{ProductID: "2"}, "/v1/variants",
			[]lemonsqueezy.QueryItem{{Name: "filter[product_id]", Value: "2"}},
		},
		{
			"variant files", route.VariantFiles{VariantID: "3"}, "/v1/files",
			[]lemonsqueezy.QueryItem{{Name: "filter[variant_id]", Value: "3"}},
		},
		{
			"order order items", route.OrderOrderItems{OrderID: "7"}, "/v1/order-items",
			[]lemonsqueezy.QueryItem{{Name: "filter[order_id]", Value: "7"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolved := route.Resolve(tt.route)
			assert.Equal(t, tt.path, resolved.Path)
			assert.Equal(t, tt.fixed, resolved.Fixed)
			assert.True(t, strings.HasPrefix(resolved.Path, "/v1/"))
		})
	}
}

func TestResolve_IDAppearsOnce(t *testing.T) {
	t.Parallel()

	resolved := route.Resolve(route.Order{ID: "ord_123"})

	assert.Equal(t, 1, strings.Count(resolved.Path, "ord_123"))
	assert.True(t, strings.HasSuffix(resolved.Path, "/ord_123"))
}

func TestResolve_EscapesID(t *testing.T) {
	t.Parallel()

	resolved := route.Resolve(route.Order{ID: "a/b c"})

	assert.Equal(t, "/v1/orders/a%2Fb%20c", resolved.Path)
}

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()

	r := route.StoreSubscriptions{StoreID: "5"}

	assert.Equal(t, route.Resolve(r), route.Resolve(r))
}
