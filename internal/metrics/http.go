package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// unmatchedPath labels requests that reached no registered route.
const unmatchedPath = "unmatched"

// httpMetrics holds HTTP-specific metric instruments.
type httpMetrics struct {
	requestCounter metric.Int64Counter
	durationHisto  metric.Float64Histogram
	deniedCounter  metric.Int64Counter
}

func newHTTPMetrics(meter metric.Meter, namespace string) (*httpMetrics, error) {
	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	deniedCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_denied_total", namespace),
		metric.WithDescription("Requests rejected as unauthenticated, forbidden or rate limited"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{
		requestCounter: requestCounter,
		durationHisto:  durationHisto,
		deniedCounter:  deniedCounter,
	}, nil
}

// HTTPMetricsMiddleware returns a Gin middleware that records HTTP request metrics.
// Tracks total requests and request durations with method, path, and status_code labels,
// plus a denial counter for 401, 403 and 429 responses.
// The path label is the route pattern (e.g., /catalog/:id) to prevent high cardinality.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	metrics, err := newHTTPMetrics(meterProvider.Meter(namespace), namespace)
	if err != nil {
		// If metric creation fails, return a no-op middleware
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", sanitizePath(c.FullPath())),
			attribute.String("status_code", strconv.Itoa(status)),
		)

		ctx := c.Request.Context()
		metrics.requestCounter.Add(ctx, 1, attrs)
		metrics.durationHisto.Record(ctx, time.Since(start).Seconds(), attrs)

		if isDenied(status) {
			metrics.deniedCounter.Add(ctx, 1, attrs)
		}
	}
}

// isDenied reports whether status is a gate rejection.
func isDenied(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return true
	default:
		return false
	}
}

// sanitizePath returns the matched route pattern. Requests the gate rejected on an
// unknown path have no pattern and share the "unmatched" label.
func sanitizePath(fullPath string) string {
	if fullPath == "" {
		return unmatchedPath
	}
	return fullPath
}
