// Package metrics provides Prometheus metrics collection for the
// shipping optimizer service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OptimizationsTotal tracks total shipment optimizations by outcome.
	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_optimizations_total",
			Help: "Total number of shipment optimizations",
		},
		[]string{"status"},
	)

	// OptimizationDuration tracks shipment optimization duration.
	OptimizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipment_optimization_duration_seconds",
			Help:    "Shipment optimization duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// BoxesPerPlan tracks how many boxes each plan used.
	BoxesPerPlan = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipment_boxes_per_plan",
			Help:    "Number of boxes per shipment plan",
			Buckets: []float64{1, 2, 3, 4, 5, 8, 12, 20},
		},
	)

	// PlanVoidRatio tracks the average void ratio of committed plans.
	PlanVoidRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipment_plan_void_ratio",
			Help:    "Average void ratio across the boxes of a plan",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
		},
	)

	// RateQuotesTotal tracks rate quote requests by provider and outcome.
	RateQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_quotes_total",
			Help: "Total number of rate quote requests",
		},
		[]string{"provider", "status"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOptimization records metrics for one optimization run.
func RecordOptimization(duration time.Duration, status string, totalBoxes int, avgVoidRatio float64) {
	OptimizationDuration.Observe(duration.Seconds())
	OptimizationsTotal.WithLabelValues(status).Inc()
	if totalBoxes > 0 {
		BoxesPerPlan.Observe(float64(totalBoxes))
		PlanVoidRatio.Observe(avgVoidRatio)
	}
}

// RecordRateQuote records metrics for a rate quote request.
func RecordRateQuote(provider, status string) {
	RateQuotesTotal.WithLabelValues(provider, status).Inc()
}
