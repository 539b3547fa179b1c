// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_store_api_requests_total",
			Help: "Total number of calls made to the store API",
		},
		[]string{"resource", "method", "status"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_store_api_request_duration_seconds",
			Help:    "Duration of store API calls",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2, 5, 10},
		},
		[]string{"resource", "method"},
	)

	subscriptionCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_subscription_cache_total",
			Help: "Subscription list cache lookups by result",
		},
		[]string{"result"},
	)

	subscriptionActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_subscription_actions_total",
			Help: "Subscription mutations by action and outcome",
		},
		[]string{"action", "outcome"},
	)
)

// ObserveHTTP records one served request. route is the matched gin route
// pattern, never the raw path.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveUpstream records one store API call. status 0 means the request
// never got a response.
func ObserveUpstream(resource, method string, status int, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
	upstreamDuration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}

// CacheHit counts a subscription list served from cache.
func CacheHit() {
	subscriptionCache.WithLabelValues("hit").Inc()
}

// CacheMiss counts a subscription list fetched from the store API.
func CacheMiss() {
	subscriptionCache.WithLabelValues("miss").Inc()
}

// ObserveSubscriptionAction counts a subscription mutation.
func ObserveSubscriptionAction(action, outcome string) {
	subscriptionActions.WithLabelValues(action, outcome).Inc()
}
