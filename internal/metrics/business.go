package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apperrors "github.com/allisson/catalog/internal/errors"
)

// Business domains recorded in the "domain" label.
const (
	DomainAuth    = "auth"
	DomainCatalog = "catalog"
)

// Operation outcomes recorded in the "status" label.
const (
	// StatusSuccess marks an operation that returned no error.
	StatusSuccess = "success"
	// StatusRejected marks an operation refused because of the caller: bad input,
	// bad credentials, a duplicate email or a missing product.
	StatusRejected = "rejected"
	// StatusError marks any other failure, such as a database outage.
	StatusError = "error"
)

// StatusOf classifies err into one of the status label values.
func StatusOf(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case apperrors.IsClientError(err):
		return StatusRejected
	default:
		return StatusError
	}
}

// BusinessMetrics records the count and latency of auth and catalog use case calls.
type BusinessMetrics interface {
	// RecordOperation counts one call labelled by domain, operation and status.
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes the call latency in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

// Observe records both the count and the latency of a call that began at start
// and finished with err.
func Observe(ctx context.Context, m BusinessMetrics, domain, operation string, start time.Time, err error) {
	status := StatusOf(err)
	m.RecordOperation(ctx, domain, operation, status)
	m.RecordDuration(ctx, domain, operation, time.Since(start), status)
}

// businessMetrics implements BusinessMetrics using OpenTelemetry metrics.
type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewBusinessMetrics creates the "<namespace>_operations_total" counter and the
// "<namespace>_operation_duration_seconds" histogram on meterProvider.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of auth and catalog operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of auth and catalog operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

// NoOpBusinessMetrics discards everything. The container uses it when METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}
