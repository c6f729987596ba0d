// Package metrics defines Prometheus metrics for transitroute.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transitroute_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transitroute_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transitroute_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transitroute_search_duration_seconds",
			Help:    "Path search duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"algorithm"},
	)

	SearchNoPath = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transitroute_search_no_path_total",
			Help: "Searches that completed without finding a path",
		},
		[]string{"algorithm"},
	)

	SearchHops = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transitroute_search_hops",
			Help:    "Hop count of found paths",
			Buckets: prometheus.LinearBuckets(0, 5, 12),
		},
		[]string{"algorithm"},
	)

	StopCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "transitroute_stops_total",
			Help: "Stops in the loaded network",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "transitroute_edges_total",
			Help: "Directed edges in the loaded network",
		},
	)

	RouteCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "transitroute_routes_total",
			Help: "Routes serving at least one edge",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SearchDuration, SearchNoPath, SearchHops,
		StopCount, EdgeCount, RouteCount,
	)
}
