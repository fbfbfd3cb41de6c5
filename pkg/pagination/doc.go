// Package pagination provides lazy traversal of paginated API endpoints
// that link their pages with a server-supplied next URL.
//
// The catalog reports pagination in the response body itself: each page
// carries a "next" field holding the absolute URL of the following page,
// or null on the last one. This package implements a pull-based iterator
// over that chain.
//
// Example usage:
//
//	books := pagination.Follow(ctx, booksURL, params, fetchPage)
//	for book, err := range books {
//		if err != nil {
//			return err
//		}
//		// consume book; break at any point to stop fetching
//	}
//
// The iterator:
//   - Issues exactly one GET per page, lazily, in traversal order
//   - Attaches caller parameters to the first request only
//   - Follows next URLs verbatim until the server reports null
//   - Stops requesting as soon as the consumer breaks out
//   - Ends the sequence with a single error element on failure
package pagination
