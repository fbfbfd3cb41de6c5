// Package testutil provides testing utilities for the Gutendex client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock catalog endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockCatalog is a configurable mock Gutendex server for testing.
type MockCatalog struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount int
	Queries      []url.Values
	LastHeader   http.Header
}

// NewMockCatalog creates a new mock catalog server.
func NewMockCatalog() *MockCatalog {
	mock := &MockCatalog{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.Queries = append(mock.Queries, r.URL.Query())
		mock.LastHeader = r.Header.Clone()
		mock.mu.Unlock()

		// Check for custom handler
		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		// Default: empty single-page listing
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(NewPageJSON(0, "")))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockCatalog) URL() string {
	return m.server.URL
}

// BooksURL returns the books listing endpoint of the mock server.
func (m *MockCatalog) BooksURL() string {
	return m.server.URL + "/books/"
}

// Close shuts down the mock server.
func (m *MockCatalog) Close() {
	m.server.Close()
}

// Reset clears all tracking state.
func (m *MockCatalog) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.Queries = nil
	m.LastHeader = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockCatalog) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockCatalog) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if resp.Headers["Content-Type"] == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// ServeBookChain registers a chain of listing pages under /books/. Each
// element of pages holds the book IDs of one page; pages after the first are
// served at /books/pages/<n> and linked through next URLs, with the last
// page's next set to null. The reported count is the total number of IDs.
func (m *MockCatalog) ServeBookChain(pages [][]int) {
	total := 0
	for _, ids := range pages {
		total += len(ids)
	}

	for i, ids := range pages {
		path := "/books/"
		if i > 0 {
			path = fmt.Sprintf("/books/pages/%d", i)
		}

		next := ""
		if i < len(pages)-1 {
			next = m.server.URL + fmt.Sprintf("/books/pages/%d", i+1)
		}

		books := make([]string, 0, len(ids))
		for _, id := range ids {
			books = append(books, NewBookJSON(id))
		}

		m.SetResponse(path, MockResponse{
			StatusCode: http.StatusOK,
			Body:       NewPageJSON(total, next, books...),
		})
	}
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockCatalog) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// QueryAt returns the query string of the i-th request received.
func (m *MockCatalog) QueryAt(i int) url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.Queries) {
		return nil
	}
	return m.Queries[i]
}

// NewBookJSON returns a minimal valid book document with the given ID.
func NewBookJSON(id int) string {
	return fmt.Sprintf(`{"id":%d,"title":"Book %d",`+
		`"subjects":["Fiction"],`+
		`"authors":[{"birth_year":1828,"death_year":1910,"name":"Author %d"}],`+
		`"translators":[],"bookshelves":[],"languages":["en"],`+
		`"copyright":false,"media_type":"Text",`+
		`"formats":{"text/html":"https://example.org/%d.html"},`+
		`"download_count":%d}`, id, id, id, id, id*10)
}

// NewPageJSON builds a listing page body. next is the absolute URL of the
// following page; an empty string renders as null (last page).
func NewPageJSON(count int, next string, books ...string) string {
	nextJSON := "null"
	if next != "" {
		nextJSON = fmt.Sprintf("%q", next)
	}
	return fmt.Sprintf(`{"count":%d,"next":%s,"previous":null,"results":[%s]}`,
		count, nextJSON, strings.Join(books, ","))
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"detail": "internal server error"}`,
	}
}

// NewNotFoundResponse creates a 404 Not Found response.
func NewNotFoundResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"detail": "not found"}`,
	}
}
