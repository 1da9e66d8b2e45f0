package route

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
	"github.com/fivetwenty-io/lemonsqueezy/pkg/lemonsqueezy"
)

// DefaultBaseURL is the scheme and host every request goes to.
func DefaultBaseURL() *url.URL {
	return &url.URL{Scheme: constants.APIScheme, Host: constants.APIHost}
}

// queryUnescaper restores the characters the API's filter syntax needs
// literally and writes spaces as %20.
var queryUnescaper = strings.NewReplacer(
	"%3A", ":",
	"%28", "(",
	"%29", ")",
	"+", "%20",
)

// EscapeQueryComponent percent-encodes s for a query string, leaving ':',
// '(' and ')' unescaped.
func EscapeQueryComponent(s string) string {
	return queryUnescaper.Replace(url.QueryEscape(s))
}

// EncodeQuery joins items in order as name=value pairs.
func EncodeQuery(items []lemonsqueezy.QueryItem) string {
	var buf strings.Builder

	for i, item := range items {
		if i > 0 {
			buf.WriteByte('&')
		}

		buf.WriteString(EscapeQueryComponent(item.Name))
		buf.WriteByte('=')
		buf.WriteString(EscapeQueryComponent(item.Value))
	}

	return buf.String()
}

// QueryItems returns the full ordered query of a request: pagination first,
// then the caller's items, then the route's fixed items.
func QueryItems(r Route, query []lemonsqueezy.QueryItem, page *lemonsqueezy.PageParams) []lemonsqueezy.QueryItem {
	resolved := Resolve(r)

	items := make([]lemonsqueezy.QueryItem, 0, len(query)+len(resolved.Fixed)+2)

	if page != nil {
		items = append(items,
			lemonsqueezy.QueryItem{Name: constants.QueryPageSize, Value: strconv.Itoa(page.EffectiveSize())},
			lemonsqueezy.QueryItem{Name: constants.QueryPageNumber, Value: strconv.Itoa(page.EffectiveNumber())},
		)
	}

	items = append(items, query...)
	items = append(items, resolved.Fixed...)

	return items
}

// BuildURL returns the absolute URL of r on base. base must carry a scheme
// and host; a base without them is a programming error and panics.
func BuildURL(base *url.URL, r Route, query []lemonsqueezy.QueryItem, page *lemonsqueezy.PageParams) *url.URL {
	if base == nil || base.Scheme == "" || base.Host == "" {
		panic(fmt.Sprintf("route: invalid base URL %v", base))
	}

	escapedPath := Resolve(r).Path

	path, err := url.PathUnescape(escapedPath)
	if err != nil {
		panic(fmt.Sprintf("route: invalid path %q: %v", escapedPath, err))
	}

	return &url.URL{
		Scheme:   base.Scheme,
		Host:     base.Host,
		Path:     path,
		RawPath:  escapedPath,
		RawQuery: EncodeQuery(QueryItems(r, query, page)),
	}
}
