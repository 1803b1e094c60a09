// Package metrics defines and registers the Prometheus metrics of the
// settings server and serves them over HTTP.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gophsettings"

// RequestsTotal counts finished gRPC calls.
// Labels:
//   - method: the gRPC method name (e.g. "UpdateNickname")
//   - code: the gRPC status code (e.g. "OK", "AlreadyExists")
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "grpc_requests_total",
		Help:      "Total number of gRPC requests, by method and status code.",
	},
	[]string{"method", "code"},
)

// RequestDuration measures handler latency.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "grpc_request_duration_seconds",
		Help:      "Duration of gRPC request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// MutationsRejectedTotal counts account changes refused for a domain reason.
// Label:
//   - reason: "validation", "duplicate", "not_found" or "malformed_zone_key"
var MutationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_rejected_total",
		Help:      "Total number of rejected account changes, by reason.",
	},
	[]string{"reason"},
)
