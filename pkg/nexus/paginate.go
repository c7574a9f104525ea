package nexus

import (
	"context"

	"github.com/pkg/errors"
)

// PageFunc fetches the page identified by continuationToken. The first page
// is requested with an empty token.
type PageFunc[T any] func(ctx context.Context, continuationToken string) (*Page[T], error)

// PaginateOption tunes Paginate.
type PaginateOption func(*paginateOptions)

type paginateOptions struct {
	maxPages int
	onPage   func(n int, items int, hasMore bool)
}

// WithMaxPages stops with ErrTooManyPages once more than n pages would be
// fetched. n <= 0 means no limit, which is the default.
func WithMaxPages(n int) PaginateOption {
	return func(o *paginateOptions) {
		o.maxPages = n
	}
}

// WithPageHook calls fn after every page with its 1-based number.
func WithPageHook(fn func(n int, items int, hasMore bool)) PaginateOption {
	return func(o *paginateOptions) {
		o.onPage = fn
	}
}

// Paginate calls fetch until the server stops returning a continuation
// token and concatenates the items of every page in fetch order. Whether a
// page is empty has no effect on continuation; only the token counts.
func Paginate[T any](ctx context.Context, fetch PageFunc[T], opts ...PaginateOption) ([]T, error) {
	o := &paginateOptions{}
	for _, opt := range opts {
		opt(o)
	}

	result := make([]T, 0)
	token := ""
	for n := 1; ; n++ {
		if o.maxPages > 0 && n > o.maxPages {
			return nil, errors.Wrapf(ErrTooManyPages, "still more after %d pages", o.maxPages)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := fetch(ctx, token)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return result, nil
		}

		result = append(result, page.Items...)
		if o.onPage != nil {
			o.onPage(n, len(page.Items), page.HasMore())
		}

		if !page.HasMore() {
			return result, nil
		}
		token = page.ContinuationToken
	}
}
