package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// StoresClient implements lemonsqueezy.StoresClient.
type StoresClient struct {
	requester *requester
}

// newStoresClient creates a new stores client.
func newStoresClient(requester *requester) *StoresClient {
	return &StoresClient{
		requester: requester,
	}
}

// Get implements lemonsqueezy.StoresClient.Get.
func (c *StoresClient) Get(ctx context.Context, id string, opts *lemonsqueezy.GetOptions) (*lemonsqueezy.Response[lemonsqueezy.Store, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	resp, err := getResource[lemonsqueezy.Store](ctx, c.requester, route.Store{ID: id}, opts)
	if err != nil {
		return nil, fmt.Errorf("getting store: %w", err)
	}

	return resp, nil
}

// List implements lemonsqueezy.StoresClient.List.
func (c *StoresClient) List(ctx context.Context, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Store, lemonsqueezy.Included], error) {
	resp, err := listResources[lemonsqueezy.Store](ctx, c.requester, route.Stores{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}

	return resp, nil
}
