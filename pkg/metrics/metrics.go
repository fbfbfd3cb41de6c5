// Package metrics provides the centralized Prometheus metrics registry for
// the Gutendex client. All metrics are defined in their respective packages
// (client, pagination) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Gutendex client.
// All metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - gutendex_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - gutendex_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - gutendex_errors_total{class} (Counter): Errors by class (client, server, network)
//
// Pagination Metrics (pkg/pagination):
//   - gutendex_pages_fetched_total (Counter): Pages fetched across all traversals
//   - gutendex_items_yielded_total (Counter): Items handed to consumers
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(gutendex_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(gutendex_request_duration_seconds_bucket[5m]))
//
//   # Average Books per Page
//   rate(gutendex_items_yielded_total[5m]) / rate(gutendex_pages_fetched_total[5m])
