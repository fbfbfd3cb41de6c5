// Package client provides the core Gutendex HTTP client with error
// classification, structured logging, and request metrics.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for catalog requests.
var (
	gutendexRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gutendex_requests_total",
		Help: "Total catalog requests by endpoint and status",
	}, []string{"endpoint", "status"})

	gutendexRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gutendex_request_duration_seconds",
		Help:    "Catalog request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	gutendexErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gutendex_errors_total",
		Help: "Total catalog request errors by class",
	}, []string{"class"})
)

// ErrorClass represents a classification of request errors.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents network/timeout errors.
	ErrorClassNetwork ErrorClass = "network"
)

// Client is the Gutendex HTTP client.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the catalog root, e.g. "https://gutendex.com".
	BaseURL string

	// User-Agent header sent with every request.
	// Format: "AppName/Version (contact@example.com)"
	UserAgent string

	// Timeout bounds a single page request. The API documents no
	// timeout of its own, so an unset value falls back to 30s rather
	// than blocking forever.
	Timeout time.Duration

	// HTTPClient overrides the transport (for testing). Timeout is
	// ignored when set.
	HTTPClient *http.Client
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(baseURL, userAgent string) Config {
	return Config{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Timeout:   30 * time.Second,
	}
}

// New creates a new catalog client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("base URL must be absolute (got %q)", cfg.BaseURL)
	}

	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := log.With().Str("component", "gutendex-client").Logger()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured catalog root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Get performs a single GET request and returns the response body.
// params are merged into the URL's query string; pass nil when the URL
// already carries its parameters (pagination next links do). A non-2xx
// status or a transport failure is returned as *APIError.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL %q: %w", rawURL, err)
	}

	if len(params) > 0 {
		q := u.Query()
		for key, values := range params {
			for _, value := range values {
				q.Add(key, value)
			}
		}
		u.RawQuery = q.Encode()
	}

	endpoint := u.Path

	startTime := time.Now()
	defer func() {
		gutendexRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("url", u.String()).
		Msg("Executing catalog request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		gutendexErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		gutendexRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, &APIError{
			ErrorClass: ErrorClassNetwork,
			Message:    "request failed",
			Err:        err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errClass := classifyStatus(resp.StatusCode)
		gutendexErrorsTotal.WithLabelValues(string(errClass)).Inc()
		gutendexRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

		// Body is kept for diagnostics; the request is not retried.
		body, _ := io.ReadAll(resp.Body)

		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("Catalog request error")

		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorClass: errClass,
			Message:    resp.Status,
			Body:       string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		gutendexErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		gutendexRequestsTotal.WithLabelValues(endpoint, "body_error").Inc()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			ErrorClass: ErrorClassNetwork,
			Message:    "read response body",
			Err:        err,
		}
	}

	gutendexRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	return body, nil
}

// classifyStatus categorizes a non-2xx status for observability and handling.
func classifyStatus(statusCode int) ErrorClass {
	switch {
	case statusCode >= 400 && statusCode < 500:
		return ErrorClassClient
	default:
		return ErrorClassServer
	}
}
