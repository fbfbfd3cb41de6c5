package pagination

import (
	"context"
	"iter"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for pagination traversal.
var (
	pagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gutendex_pages_fetched_total",
		Help: "Total pages fetched across all paginated traversals",
	})

	itemsYieldedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gutendex_items_yielded_total",
		Help: "Total items yielded across all paginated traversals",
	})
)

// PageFunc fetches a single page of items T. It returns the page's items,
// the absolute URL of the next page (nil when the traversal is done), and
// an error that terminates the traversal.
type PageFunc[T any] func(ctx context.Context, pageURL string, params url.Values) (items []T, next *string, err error)

// Follow returns an iterator that walks a chain of pages starting at start.
// params are attached to the first request only; every later request uses
// the server's next URL verbatim, which already encodes them.
//
// Fetching is lazy and strictly sequential: one request per page, issued
// only when the consumer asks for more items, none after the consumer stops.
// A fetch error is yielded once as the final element and ends the sequence;
// items yielded before it remain valid.
func Follow[T any](ctx context.Context, start string, params url.Values, fetch PageFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		pageURL := start

		for {
			items, next, err := fetch(ctx, pageURL, params)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			pagesFetchedTotal.Inc()

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
				itemsYieldedTotal.Inc()
			}

			if next == nil {
				return
			}
			pageURL = *next
			params = nil
		}
	}
}
