// Package route maps API operations to paths and fixed query items and builds
// request URLs from them.
package route

import (
	"net/url"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// Route identifies one endpoint operation. The set of routes is closed:
// only the types in this package implement it.
type Route interface {
	resolve() Resolved
}

// Resolved is the path and fixed query of a route.
type Resolved struct {
	Path  string
	Fixed []lemonsqueezy.QueryItem
}

// Resolve returns the path and fixed query items of r.
func Resolve(r Route) Resolved {
	return r.resolve()
}

type (
	// Me is the authenticated user.
	Me struct{}

	// Orders lists orders.
	Orders struct{}
	// Order is one order.
	Order struct{ ID string }
	// StoreOrders lists the orders of a store.
	StoreOrders struct{ StoreID string }

	// Stores lists stores.
	Stores struct{}
	// Store is one store.
	Store struct{ ID string }

	// Products lists products.
	Products struct{}
	// Product is one product.
	Product struct{ ID string }
	// StoreProducts lists the products of a store.
	StoreProducts struct{ StoreID string }

	// Variants lists variants.
	Variants struct{}
	// Variant is one variant.
	Variant struct{ ID string }
	// ProductVariants lists the variants of a product.
	ProductVariants struct{ ProductID string }

	// Files lists files.
	Files struct{}
	// File is one file.
	File struct{ ID string }
	// VariantFiles lists the files of a variant.
	VariantFiles struct{ VariantID string }

	// OrderItems lists order items.
	OrderItems struct{}
	// OrderItem is one order item.
	OrderItem struct{ ID string }
	// OrderOrderItems lists the items of an order.
	OrderOrderItems struct{ OrderID string }

	// Subscriptions lists subscriptions.
	Subscriptions struct{}
	// Subscription is one subscription.
	Subscription struct{ ID string }
	// StoreSubscriptions lists the subscriptions of a store.
	StoreSubscriptions struct{ StoreID string }
)

func (Me) resolve() Resolved { return at(constants.APIPathUsersMe) }

func (Orders) resolve() Resolved  { return at(constants.APIPathOrders) }
func (r Order) resolve() Resolved { return byID(constants.APIPathOrders, r.ID) }
func (r StoreOrders) resolve() Resolved {
	return filtered(constants.APIPathOrders, constants.FilterStoreID, r.StoreID)
}

func (Stores) resolve() Resolved  { return at(constants.APIPathStores) }
func (r Store) resolve() Resolved { return byID(constants.APIPathStores, r.ID) }

func (Products) resolve() Resolved  { return at(constants.APIPathProducts) }
func (r Product) resolve() Resolved { return byID(constants.APIPathProducts, r.ID) }
func (r StoreProducts) resolve() Resolved {
	return filtered(constants.APIPathProducts, constants.FilterStoreID, r.StoreID)
}

func (Variants) resolve() Resolved  { return at(constants.APIPathVariants) }
func (r Variant) resolve() Resolved { return byID(constants.APIPathVariants, r.ID) }
func (r ProductVariants) resolve() Resolved {
	return filtered(constants.APIPathVariants, constants.FilterProductID, r.ProductID)
}

func (Files) resolve() Resolved  { return at(constants.APIPathFiles) }
func (r File) resolve() Resolved { return byID(constants.APIPathFiles, r.ID) }
func (r VariantFiles) resolve() Resolved {
	return filtered(constants.APIPathFiles, constants.FilterVariantID, r.VariantID)
}

func (OrderItems) resolve() Resolved  { return at(constants.APIPathOrderItems) }
func (r OrderItem) resolve() Resolved { return byID(constants.APIPathOrderItems, r.ID) }
func (r OrderOrderItems) resolve() Resolved {
	return filtered(constants.APIPathOrderItems, constants.FilterOrderID, r.OrderID)
}

func (Subscriptions) resolve() Resolved  { return at(constants.APIPathSubscriptions) }
func (r Subscription) resolve() Resolved { return byID(constants.APIPathSubscriptions, r.ID) }
func (r StoreSubscriptions) resolve() Resolved {
	return filtered(constants.APIPathSubscriptions, constants.FilterStoreID, r.StoreID)
}

func at(path string) Resolved {
	return Resolved{Path: path}
}

func byID(collection, id string) Resolved {
	return Resolved{Path: collection + "/" + url.PathEscape(id)}
}

func filtered(collection, name, value string) Resolved {
	return Resolved{
		Path:  collection,
		Fixed: []lemonsqueezy.QueryItem{{Name: name, Value: value}},
	}
}
