// Package metrics provides Prometheus metrics collection for the cart service.
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

	// CartMutationsTotal tracks cart mutations by operation.
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"operation"},
	)

	// DiscountApplicationsTotal tracks discount code applications by outcome.
	DiscountApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discount_applications_total",
			Help: "Total number of discount code applications",
		},
		[]string{"result"},
	)

	// CheckoutsTotal tracks checkout attempts by outcome.
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Total number of checkout attempts",
		},
		[]string{"status"},
	)

	// CheckoutOrderValue tracks the total of placed orders.
	CheckoutOrderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_order_value_dollars",
			Help:    "Order totals at checkout in dollars",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 25000, 50000, 100000},
		},
	)

	// CartStoreOperationsTotal tracks persistence adapter operations.
	CartStoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_store_operations_total",
			Help: "Total number of cart store operations",
		},
		[]string{"operation", "result"},
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

// RecordCartMutation records a cart mutation.
func RecordCartMutation(operation string) {
	CartMutationsTotal.WithLabelValues(operation).Inc()
}

// RecordDiscountApplication records a discount application outcome.
func RecordDiscountApplication(valid bool) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	DiscountApplicationsTotal.WithLabelValues(result).Inc()
}

// RecordCheckout records a checkout attempt and, when it succeeded,
// the order value.
func RecordCheckout(status string, total float64) {
	CheckoutsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		CheckoutOrderValue.Observe(total)
	}
}

// RecordCartStoreOperation records a persistence adapter operation.
func RecordCartStoreOperation(operation, result string) {
	CartStoreOperationsTotal.WithLabelValues(operation, result).Inc()
}
