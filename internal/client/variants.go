package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// VariantsClient implements lemonsqueezy.VariantsClient.
type VariantsClient struct {
	requester *requester
}

// newVariantsClient creates a new variants client.
func newVariantsClient(requester *requester) *VariantsClient {
	return &VariantsClient{
		requester: requester,
	}
}

// Get implements lemonsqueezy.VariantsClient.Get.
func (c *VariantsClient) Get(ctx context.Context, id string, opts *lemonsqueezy.GetOptions) (*lemonsqueezy.Response[lemonsqueezy.Variant, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	resp, err := getResource[lemonsqueezy.Variant](ctx, c.requester, route.Variant{ID: id}, opts)
	if err != nil {
		return nil, fmt.Errorf("getting variant: %w", err)
	}

	return resp, nil
}

// List implements lemonsqueezy.VariantsClient.List.
func (c *VariantsClient) List(ctx context.Context, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Variant, lemonsqueezy.Included], error) {
	resp, err := listResources[lemonsqueezy.Variant](ctx, c.requester, route.Variants{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing variants: %w", err)
	}

	return resp, nil
}

// ListForProduct lists the variants of one product.
func (c *VariantsClient) ListForProduct(ctx context.Context, productID string, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Variant, lemonsqueezy.Included], error) {
	err := requireID(productID)
	if err != nil {
		return nil, err
	}

	resp, err := listResources[lemonsqueezy.Variant](ctx, c.requester, route.ProductVariants{ProductID: productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing variants for product: %w", err)
	}

	return resp, nil
}
