package client

import (
	"context"
	"encoding/json"
	"fmt"
	stdhttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/lemonsqueezy/internal/http"
	"github.com/fivetwenty-io/lemonsqueezy/internal/route"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// requester is shared by every resource client of one Client.
type requester struct {
	httpClient *http.Client
	baseURL    *url.URL
}

func (r *requester) do(ctx context.Context, method string, rt route.Route, query []lemonsqueezy.QueryItem, page *lemonsqueezy.PageParams, body []byte) (*http.Response, error) {
	return r.httpClient.Do(ctx, &http.Request{
		Method: method,
		URL:    route.BuildURL(r.baseURL, rt, query, page),
		Body:   body,
	})
}

func call[T any](ctx context.Context, r *requester, method string, rt route.Route, query []lemonsqueezy.QueryItem, page *lemonsqueezy.PageParams, body []byte) (*T, error) {
	resp, err := r.do(ctx, method, rt, query, page, body)
	if err != nil {
		return nil, err
	}

	result, err := lemonsqueezy.Decode[T](resp.Body)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func getResource[R any](ctx context.Context, r *requester, rt route.Route, opts *lemonsqueezy.GetOptions) (*lemonsqueezy.Response[R, lemonsqueezy.Included], error) {
	return call[lemonsqueezy.Response[R, lemonsqueezy.Included]](ctx, r, stdhttp.MethodGet, rt, opts.QueryItems(), nil, nil)
}

func listResources[R any](ctx context.Context, r *requester, rt route.Route, opts *lemonsqueezy.ListOptions) (*lemonsqueezy.ListResponse[R, lemonsqueezy.Included], error) {
	query, err := opts.QueryItems()
	if err != nil {
		return nil, err
	}

	return call[lemonsqueezy.ListResponse[R, lemonsqueezy.Included]](ctx, r, stdhttp.MethodGet, rt, query, opts.PageParams(), nil)
}

func encodeUpdate[A any](resourceType, id string, attributes A) ([]byte, error) {
	body, err := json.Marshal(lemonsqueezy.UpdateDocument[A]{
		Data: lemonsqueezy.UpdateData[A]{
			Type:       resourceType,
			ID:         id,
			Attributes: attributes,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding %s update: %w", resourceType, err)
	}

	return body, nil
}

func requireID(id string) error {
	if id == "" {
		return lemonsqueezy.ErrIDRequired
	}

	return nil
}
