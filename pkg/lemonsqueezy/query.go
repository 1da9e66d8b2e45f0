package lemonsqueezy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
)

// GetOptions are the options of single-resource calls.
type GetOptions struct {
	// Include lists related resources to sideload, e.g. "store", "order-items".
	Include []string
}

// QueryItems returns the caller query items of a get call.
func (o *GetOptions) QueryItems() []QueryItem {
	if o == nil || len(o.Include) == 0 {
		return nil
	}

	return []QueryItem{{Name: constants.QueryInclude, Value: strings.Join(o.Include, ",")}}
}

// ListOptions are the options of list calls.
type ListOptions struct {
	// Page selects a page; nil leaves pagination to the API.
	Page *PageParams
	// Filter is a struct whose fields carry `url:"filter[...]"` tags,
	// such as OrderFilter. Zero fields tagged omitempty are skipped.
	Filter any
	// Include lists related resources to sideload.
	Include []string
	// Query is appended verbatim after the filter and include items.
	Query []QueryItem
}

// NewListOptions returns empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithPage selects page number using the default page size.
func (o *ListOptions) WithPage(number int) *ListOptions {
	o.Page = Page(number)

	return o
}

// WithPageSize selects page number with the given size.
func (o *ListOptions) WithPageSize(number, size int) *ListOptions {
	o.Page = Page(number).WithSize(size)

	return o
}

// WithFilter sets the filter struct.
func (o *ListOptions) WithFilter(filter any) *ListOptions {
	o.Filter = filter

	return o
}

// WithInclude adds related resources to sideload.
func (o *ListOptions) WithInclude(include ...string) *ListOptions {
	o.Include = append(o.Include, include...)

	return o
}

// WithQuery appends a raw query item.
func (o *ListOptions) WithQuery(name, value string) *ListOptions {
	o.Query = append(o.Query, QueryItem{Name: name, Value: value})

	return o
}

// PageParams returns the pagination parameters, or nil.
func (o *ListOptions) PageParams() *PageParams {
	if o == nil {
		return nil
	}

	return o.Page
}

// QueryItems returns the caller query items: filter items sorted by name,
// then include, then the raw items in the order given.
func (o *ListOptions) QueryItems() ([]QueryItem, error) {
	if o == nil {
		return nil, nil
	}

	var items []QueryItem

	if o.Filter != nil {
		values, err := query.Values(o.Filter)
		if err != nil {
			return nil, fmt.Errorf("encoding filter: %w", err)
		}

		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			for _, value := range values[name] {
				items = append(items, QueryItem{Name: name, Value: value})
			}
		}
	}

	if len(o.Include) > 0 {
		items = append(items, QueryItem{Name: constants.QueryInclude, Value: strings.Join(o.Include, ",")})
	}

	items = append(items, o.Query...)

	return items, nil
}

// OrderFilter filters order lists.
type OrderFilter struct {
	StoreID   string `url:"filter[store_id],omitempty"`
	UserEmail string `url:"filter[user_email],omitempty"`
}

// ProductFilter filters product lists.
type ProductFilter struct {
	StoreID string `url:"filter[store_id],omitempty"`
}

// VariantFilter filters variant lists.
type VariantFilter struct {
	ProductID string `url:"filter[product_id],omitempty"`
	Status    string `url:"filter[status],omitempty"`
}

// FileFilter filters file lists.
type FileFilter struct {
	VariantID string `url:"filter[variant_id],omitempty"`
}

// OrderItemFilter filters order item lists.
type OrderItemFilter struct {
	OrderID   string `url:"filter[order_id],omitempty"`
	ProductID string `url:"filter[product_id],omitempty"`
	VariantID string `url:"filter[variant_id],omitempty"`
}

// SubscriptionFilter filters subscription lists.
type SubscriptionFilter struct {
	StoreID     string `url:"filter[store_id],omitempty"`
	OrderID     string `url:"filter[order_id],omitempty"`
	OrderItemID string `url:"filter[order_item_id],omitempty"`
	ProductID   string `url:"filter[product_id],omitempty"`
	VariantID   string `url:"filter[variant_id],omitempty"`
	UserEmail   string `url:"filter[user_email],omitempty"`
	Status      string `url:"filter[status],omitempty"`
}
