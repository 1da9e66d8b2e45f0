package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// ProductsClient implements lemonsqueezy.ProductsClient.
type ProductsClient struct {
	requester *requester
}

// newProductsClient creates a new products client.
func newProductsClient(requester *requester) *ProductsClient {
	return &ProductsClient{
		requester: requester,
	}
}

// Get implements lemonsqueezy.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id string, opts *lemonsqueezy.GetOptions) (*lemonsqueezy.Response[lemonsqueezy.Product, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	resp, err := getResource[lemonsqueezy.Product](ctx, c.requester, route.Product{ID: id}, opts)
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	return resp, nil
}

// List implements lemonsqueezy.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Product, lemonsqueezy.Included], error) {
	resp, err := listResources[lemonsqueezy.Product](ctx, c.requester, route.Products{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return resp, nil
}

// ListForStore lists the products of one store.
func (c *ProductsClient) ListForStore(ctx context.Context, storeID string, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Product, lemonsqueezy.Included], error) {
	err := requireID(storeID)
	if err != nil {
		return nil, err
	}

	resp, err := listResources[lemonsqueezy.Product](ctx, c.requester, route.StoreProducts{StoreID: storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing products for store: %w", err)
	}

	return resp, nil
}
