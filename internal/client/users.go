package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// UsersClient implements lemonsqueezy.UsersClient.
type UsersClient struct {
	requester *requester
}

// newUsersClient creates a new users client.
func newUsersClient(requester *requester) *UsersClient {
	return &UsersClient{
		requester: requester,
	}
}

// Me returns the user the API key belongs to.
func (c *UsersClient) Me(ctx context.Context) (*lemonsqueezy.Response[lemonsqueezy.User, lemonsqueezy.Included], error) {
	resp, err := getResource[lemonsqueezy.User](ctx, c.requester, route.Me{}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting authenticated user: %w", err)
	}

	return resp, nil
}
