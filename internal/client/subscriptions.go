package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// SubscriptionsClient implements lemonsqueezy.SubscriptionsClient.
type SubscriptionsClient struct {
	requester *requester
}

// newSubscriptionsClient creates a new subscriptions client.
func newSubscriptionsClient(requester *requester) *SubscriptionsClient {
	return &SubscriptionsClient{
		requester: requester,
	}
}

// Get implements lemonsqueezy.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id string, opts *lemonsqueezy.GetOptions) (*lemonsqueezy.Response[lemonsqueezy.Subscription, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	resp, err := getResource[lemonsqueezy.Subscription](ctx, c.requester, route.Subscription{ID: id}, opts)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return resp, nil
}

// List implements lemonsqueezy.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Subscription, lemonsqueezy.Included], error) {
	resp, err := listResources[lemonsqueezy.Subscription](ctx, c.requester, route.Subscriptions{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	return resp, nil
}

// ListForStore lists the subscriptions of one store.
func (c *SubscriptionsClient) ListForStore(ctx context.Context, storeID string, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.Subscription, lemonsqueezy.Included], error) {
	err := requireID(storeID)
	if err != nil {
		return nil, err
	}

	resp, err := listResources[lemonsqueezy.Subscription](ctx, c.requester, route.StoreSubscriptions{StoreID: storeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions for store: %w", err)
	}

	return resp, nil
}

// Update changes the plan, pause state, cancellation or billing of a subscription.
func (c *SubscriptionsClient) Update(ctx context.Context, id string, update *lemonsqueezy.SubscriptionUpdate) (*lemonsqueezy.Response[lemonsqueezy.Subscription, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	if update == nil {
		return nil, lemonsqueezy.ErrUpdateRequired
	}

	body, err := encodeUpdate(lemonsqueezy.TypeSubscriptions, id, *update)
	if err != nil {
		return nil, err
	}

	resp, err := call[lemonsqueezy.Response[lemonsqueezy.Subscription, lemonsqueezy.Included]](
		ctx, c.requester, http.MethodPatch, route.Subscription{ID: id}, nil, nil, body)
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return resp, nil
}

// Cancel cancels a subscription at the end of its billing period. The
// returned subscription is in the cancelled state until ends_at.
func (c *SubscriptionsClient) Cancel(ctx context.Context, id string) (*lemonsqueezy.Response[lemonsqueezy.Subscription, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	resp, err := call[lemonsqueezy.Response[lemonsqueezy.Subscription, lemonsqueezy.Included]](
		ctx, c.requester, http.MethodDelete, route.Subscription{ID: id}, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("cancelling subscription: %w", err)
	}

	return resp, nil
}
