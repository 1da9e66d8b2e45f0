package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// OrdersClient implements lemonsqueezy.OrdersClient.
type OrdersClient struct {
	requester *requester
}

// newOrdersClient creates a new orders client.
func newOrdersClient(requester *requester) *OrdersClient {
	return &OrdersClient{
		requester: requester,
	}
}

// Get implements lemonsqueezy.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id string, opts *lemonsqueezy.GetOptions) (*lemonsqueezy.Response[lemonsqueezy.Order, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	resp, err := getResource[lemonsqueezy.Order](ctx, c.requester, route.Order{ID: id}, opts)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}

	return resp, nil
}

// List implements lemonsqueezy.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Order, lemonsqueezy.Included], error) {
	resp, err := listResources[lemonsqueezy.Order](ctx, c.requester, route.Orders{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return resp, nil
}

// ListForStore lists the orders of one store.
func (c *OrdersClient) ListForStore(ctx context.Context, storeID string, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Order, lemonsqueezy.Included], error) {
	err := requireID(storeID)
	if err != nil {
		return nil, err
	}

	resp, err := listResources[lemonsqueezy.Order](ctx, c.requester, route.StoreOrders{StoreID: storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing orders for store: %w", err)
	}

	return resp, nil
}
