// Package metrics defines the Prometheus instruments for the demo pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DemoQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_queries_total",
			Help: "Total demo queries handled, by data source",
		},
		[]string{"source"},
	)

	DemoFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_query_failures_total",
			Help: "Demo queries that degraded to an apology response",
		},
		[]string{"source"},
	)

	DemoDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "demo_query_duration_seconds",
			Help: "End-to-end demo query duration in seconds",
		},
		[]string{"source"},
	)
)
