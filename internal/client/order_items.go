package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// OrderItemsClient implements lemonsqueezy.OrderItemsClient.
type OrderItemsClient struct {
	requester *requester
}

// newOrderItemsClient creates a new order items client.
func newOrderItemsClient(requester *requester) *OrderItemsClient {
	return &OrderItemsClient{
		requester: requester,
	}
}

// Get implements lemonsqueezy.OrderItemsClient.Get.
func (c *OrderItemsClient) Get(ctx context.Context, id string, opts *lemonsqueezy.GetOptions) (*lemonsqueezy.Response[lemonsqueezy.OrderItem, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	resp, err := getResource[lemonsqueezy.OrderItem](ctx, c.requester, route.OrderItem{ID: id}, opts)
	if err != nil {
		return nil, fmt.Errorf("getting order item: %w", err)
	}

	return resp, nil
}

// List implements lemonsqueezy.OrderItemsClient.List.
func (c *OrderItemsClient) List(ctx context.Context, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.OrderItem, lemonsqueezy.Included], error) {
	resp, err := listResources[lemonsqueezy.OrderItem](ctx, c.requester, route.OrderItems{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}

	return resp, nil
}

// ListForOrder lists the order items of one order.
func (c *OrderItemsClient) ListForOrder(ctx context.Context, orderID string, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.OrderItem, lemonsqueezy.Included], error) {
	err := requireID(orderID)
	if err != nil {
		return nil, err
	}

	resp, err := listResources[lemonsqueezy.OrderItem](ctx, c.requester, route.OrderOrderItems{OrderID: orderID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing order items for order: %w", err)
	}

	return resp, nil
}
