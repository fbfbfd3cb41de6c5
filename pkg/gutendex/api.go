package gutendex

import (
	"context"
	"iter"
	"net/url"
	"strings"

	"github.com/Sternrassler/gutendex-client/pkg/client"
	"github.com/Sternrassler/gutendex-client/pkg/pagination"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public catalog root.
const DefaultBaseURL = "https://gutendex.com"

// API wraps a catalog client with the typed book-listing surface.
type API struct {
	client   *client.Client
	booksURL string
	logger   zerolog.Logger
}

// New creates an API over the given client. The books endpoint is derived
// from the client's base URL.
func New(c *client.Client) *API {
	return &API{
		client:   c,
		booksURL: strings.TrimRight(c.BaseURL(), "/") + "/books/",
		logger:   log.With().Str("component", "gutendex-api").Logger(),
	}
}

// ListBooks returns a lazy sequence of books matching params (a language
// filter, a search term - whatever the API accepts; keys are not validated
// locally). Pages are fetched one at a time as the consumer advances, and
// no request is issued beyond the pages needed for what was consumed.
//
// The sequence is forward-only and non-restartable; range over the result
// again to issue a fresh traversal. Errors (*client.APIError, *DecodeError,
// *SchemaError) terminate the sequence; books yielded before the failing
// page remain valid.
func (a *API) ListBooks(ctx context.Context, params url.Values) iter.Seq2[Book, error] {
	fetch := func(ctx context.Context, pageURL string, params url.Values) ([]Book, *string, error) {
		body, err := a.client.Get(ctx, pageURL, params)
		if err != nil {
			return nil, nil, err
		}

		page, err := DecodePage(body)
		if err != nil {
			return nil, nil, err
		}

		a.logger.Debug().
			Str("url", pageURL).
			Int("books", len(page.Results)).
			Int("count", page.Count).
			Bool("last_page", page.Next == nil).
			Msg("Page decoded")

		return page.Results, page.Next, nil
	}

	return pagination.Follow(ctx, a.booksURL, params, fetch)
}
