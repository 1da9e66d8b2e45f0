package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// FilesClient implements lemonsqueezy.FilesClient.
type FilesClient struct {
	requester *requester
}

// newFilesClient creates a new files client.
func newFilesClient(requester *requester) *FilesClient {
	return &FilesClient{
		requester: requester,
	}
}

// Get implements lemonsqueezy.FilesClient.Get.
func (c *FilesClient) Get(ctx context.Context, id string, opts *lemonsqueezy.GetOptions) (*lemonsqueezy.Response[lemonsqueezy.File, lemonsqueezy.Included], error) {
	err := requireID(id)
	if err != nil {
		return nil, err
	}

	resp, err := getResource[lemonsqueezy.File](ctx, c.requester, route.File{ID: id}, opts)
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	return resp, nil
}

// List implements lemonsqueezy.FilesClient.List.
func (c *FilesClient) List(ctx context.Context, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.File, lemonsqueezy.Included], error) {
	resp, err := listResources[lemonsqueezy.File](ctx, c.requester, route.Files{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	return resp, nil
}

// ListForVariant lists the files of one variant.
func (c *FilesClient) ListForVariant(ctx context.Context, variantID string, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[lemonsqueezy.File, lemonsqueezy.Included], error) {
	err := requireID(variantID)
	if err != nil {
		return nil, err
	}

	resp, err := listResources[lemonsqueezy.File](ctx, c.requester, route.VariantFiles{VariantID: variantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing files for variant: %w", err)
	}

	return resp, nil
}
