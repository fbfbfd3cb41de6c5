package pagination

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
)

// stubPages drives Follow without HTTP: each entry is one page of ints,
// chained through synthetic next URLs.
type stubPages struct {
	pages    [][]int
	requests []string
	queries  []url.Values
	failAt   int // page index that returns an error, -1 for none
}

func (s *stubPages) fetch(_ context.Context, pageURL string, params url.Values) ([]int, *string, error) {
	s.requests = append(s.requests, pageURL)
	s.queries = append(s.queries, params)

	idx := len(s.requests) - 1
	if s.failAt >= 0 && idx == s.failAt {
		return nil, nil, errors.New("page fetch failed")
	}

	var next *string
	if idx < len(s.pages)-1 {
		u := fmt.Sprintf("https://example.org/books/?page=%d", idx+2)
		next = &u
	}
	return s.pages[idx], next, nil
}

func TestFollow_AllPages(t *testing.T) {
	stub := &stubPages{pages: [][]int{{1, 2}, {3}, {4, 5}}, failAt: -1}

	var got []int
	for item, err := range Follow(context.Background(), "https://example.org/books/", nil, stub.fetch) {
		if err != nil {
			t.Fatalf("Follow yielded error: %v", err)
		}
		got = append(got, item)
	}

	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Items = %v, want %v", got, want)
		}
	}
	if len(stub.requests) != 3 {
		t.Errorf("Fetches = %d, want 3", len(stub.requests))
	}
}

func TestFollow_StartURLAndNextChain(t *testing.T) {
	stub := &stubPages{pages: [][]int{{1}, {2}}, failAt: -1}

	for _, err := range Follow(context.Background(), "https://example.org/books/", nil, stub.fetch) {
		if err != nil {
			t.Fatalf("Follow yielded error: %v", err)
		}
	}

	if stub.requests[0] != "https://example.org/books/" {
		t.Errorf("First URL = %q, want start URL", stub.requests[0])
	}
	if stub.requests[1] != "https://example.org/books/?page=2" {
		t.Errorf("Second URL = %q, want next link", stub.requests[1])
	}
}

func TestFollow_ParamsOnFirstFetchOnly(t *testing.T) {
	stub := &stubPages{pages: [][]int{{1}, {2}}, failAt: -1}
	params := url.Values{"languages": {"fr"}}

	for _, err := range Follow(context.Background(), "https://example.org/books/", params, stub.fetch) {
		if err != nil {
			t.Fatalf("Follow yielded error: %v", err)
		}
	}

	if stub.queries[0].Get("languages") != "fr" {
		t.Errorf("First fetch params = %v, want languages=fr", stub.queries[0])
	}
	if stub.queries[1] != nil {
		t.Errorf("Second fetch params = %v, want nil", stub.queries[1])
	}
}

func TestFollow_EarlyBreak(t *testing.T) {
	stub := &stubPages{pages: [][]int{{1, 2}, {3, 4}, {5}}, failAt: -1}

	taken := 0
	for _, err := range Follow(context.Background(), "https://example.org/books/", nil, stub.fetch) {
		if err != nil {
			t.Fatalf("Follow yielded error: %v", err)
		}
		taken++
		if taken == 2 {
			break
		}
	}

	if len(stub.requests) != 1 {
		t.Errorf("Fetches = %d, want 1 (no fetch past consumed items)", len(stub.requests))
	}
}

func TestFollow_ErrorTerminates(t *testing.T) {
	stub := &stubPages{pages: [][]int{{1}, {2}, {3}}, failAt: 1}

	var got []int
	var gotErr error
	for item, err := range Follow(context.Background(), "https://example.org/books/", nil, stub.fetch) {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, item)
	}

	if gotErr == nil {
		t.Fatal("Expected error from failing page")
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Items before failure = %v, want [1]", got)
	}
	// Failing fetch is the last one; the error ends the sequence.
	if len(stub.requests) != 2 {
		t.Errorf("Fetches = %d, want 2", len(stub.requests))
	}
}

func TestFollow_EmptyPages(t *testing.T) {
	stub := &stubPages{pages: [][]int{{}, {}}, failAt: -1}

	count := 0
	for _, err := range Follow(context.Background(), "https://example.org/books/", nil, stub.fetch) {
		if err != nil {
			t.Fatalf("Follow yielded error: %v", err)
		}
		count++
	}

	if count != 0 {
		t.Errorf("Items = %d, want 0", count)
	}
	if len(stub.requests) != 2 {
		t.Errorf("Fetches = %d, want 2 (empty pages still advance)", len(stub.requests))
	}
}
