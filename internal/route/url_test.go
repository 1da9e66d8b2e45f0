package route_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestBuildURL(t *testing.T) {
	t.Parallel()

	t.Run("single resource", func(t *testing.T) {
		t.Parallel()

		u := route.BuildURL(route.DefaultBaseURL(), route.OrderItem{ID: "42"}, nil, nil)

		assert.Equal(t, "https://api.lemonsqueezy.com/v1/order-items/42", u.String())
		assert.Empty(t, u.RawQuery)
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		page := lemonsqueezy.Page(2).WithSize(5)
		u := route.BuildURL(route.DefaultBaseURL(), route.Orders{}, nil, page)

		assert.Equal(t, "/v1/orders", u.Path)
		assert.Equal(t, "page%5Bsize%5D=5&page%5Bnumber%5D=2", u.RawQuery)
	})

	t.Run("default page size", func(t *testing.T) {
		t.Parallel()

		u := route.BuildURL(route.DefaultBaseURL(), route.Orders{}, nil, &lemonsqueezy.PageParams{Number: 3})

		assert.Equal(t, "page%5Bsize%5D=10&page%5Bnumber%5D=3", u.RawQuery)
	})

	t.Run("page numbers start at one", func(t *testing.T) {
		t.Parallel()

		u := route.BuildURL(route.DefaultBaseURL(), route.Orders{}, nil, lemonsqueezy.Page(0))
		assert.Equal(t, "page%5Bsize%5D=10&page%5Bnumber%5D=1", u.RawQuery)

		u = route.BuildURL(route.DefaultBaseURL(), route.Orders{}, nil, &lemonsqueezy.PageParams{Number: -4, Size: 5})
		assert.Equal(t, "page%5Bsize%5D=5&page%5Bnumber%5D=1", u.RawQuery)
	})

	t.Run("no pagination", func(t *testing.T) {
		t.Parallel()

		u := route.BuildURL(route.DefaultBaseURL(), route.Stores{}, nil, nil)

		assert.NotContains(t, u.RawQuery, "page")
	})

	t.Run("ordering of items", func(t *testing.T) {
		t.Parallel()

		query := []lemonsqueezy.QueryItem{
			{Name: "include", Value: "store"},
			{Name: "filter[status]", Value: "active"},
		}

		u := route.BuildURL(route.DefaultBaseURL(), route.StoreSubscriptions{StoreID: "11"}, query, lemonsqueezy.Page(1))

		assert.Equal(t,
			"page%5Bsize%5D=10&page%5Bnumber%5D=1&include=store&filter%5Bstatus%5D=active&filter%5Bstore_id%5D=11",
			u.RawQuery)
	})

	t.Run("filter syntax characters stay literal", func(t *testing.T) {
		t.Parallel()

		query := []lemonsqueezy.QueryItem{{Name: "q", Value: "created_at:gt(2024-01-01) a&b"}}

		u := route.BuildURL(route.DefaultBaseURL(), route.Orders{}, query, nil)

		assert.Equal(t, "q=created_at:gt(2024-01-01)%20a%26b", u.RawQuery)

		values, err := url.ParseQuery(u.RawQuery)
		require.NoError(t, err)
		assert.Equal(t, "created_at:gt(2024-01-01) a&b", values.Get("q"))
	})

	t.Run("escaped id", func(t *testing.T) {
		t.Parallel()

		u := route.BuildURL(route.DefaultBaseURL(), route.Order{ID: "a/b"}, nil, nil)

		assert.Equal(t, "https://api.lemonsqueezy.com/v1/orders/a%2Fb", u.String())
		assert.Equal(t, "/v1/orders/a/b", u.Path)
	})

	t.Run("base override keeps the route path", func(t *testing.T) {
		t.Parallel()

		base := &url.URL{Scheme: "http", Host: "127.0.0.1:8080"}
		u := route.BuildURL(base, route.Me{}, nil, nil)

		assert.Equal(t, "http://127.0.0.1:8080/v1/users/me", u.String())
	})

	t.Run("invalid base panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			route.BuildURL(&url.URL{Path: "relative"}, route.Me{}, nil, nil)
		})
		assert.Panics(t, func() {
			route.BuildURL(nil, route.Me{}, nil, nil)
		})
	})
}

func TestQueryItems(t *testing.T) {
	t.Parallel()

	items := route.QueryItems(route.VariantFiles{VariantID: "3"},
		[]lemonsqueezy.QueryItem{{Name: "include", Value: "variant"}},
		lemonsqueezy.Page(4).WithSize(25))

	assert.Equal(t, []lemonsqueezy.QueryItem{
		{Name: "page[size]", Value: "25"},
		{Name: "page[number]", Value: "4"},
		{Name: "include", Value: "variant"},
		{Name: "filter[variant_id]", Value: "3"},
	}, items)
}

func TestEscapeQueryComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"page[size]", "page%5Bsize%5D"},
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"x:y(z)", "x:y(z)"},
		{"a=b&c", "a%3Db%26c"},
		{"ünï", "%C3%BCn%C3%AF"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, route.EscapeQueryComponent(tt.in), tt.in)
	}
}
