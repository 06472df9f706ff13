// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assets_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assets_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"method", "route"})

	ReportPages = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assets_report_pages",
		Help:    "Pages per generated report",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
	}, []string{"format"})

	ReportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assets_report_failures_total",
		Help: "Report generations that were aborted",
	}, []string{"format"})
)
