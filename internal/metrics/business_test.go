package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/catalog/internal/errors"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func newTestBusinessMetrics(t *testing.T, namespace string) (*Provider, BusinessMetrics) {
	t.Helper()

	provider, err := NewProvider(namespace)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, provider.Shutdown(context.Background())) })

	bm, err := NewBusinessMetrics(provider.MeterProvider(), namespace)
	require.NoError(t, err)
	return provider, bm
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, StatusSuccess},
		{"invalid input", apperrors.NewDetailed(apperrors.ErrInvalidInput, "Email already in use"), StatusRejected},
		{"unauthorized", apperrors.Wrap(apperrors.ErrUnauthorized, "invalid token"), StatusRejected},
		{"not found", fmt.Errorf("lookup: %w", apperrors.ErrNotFound), StatusRejected},
		{"forbidden", apperrors.ErrForbidden, StatusRejected},
		{"conflict", apperrors.ErrConflict, StatusRejected},
		{"too many requests", apperrors.ErrTooManyRequests, StatusRejected},
		{"infrastructure", errors.New("connection refused"), StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()
	assert.IsType(t, &NoOpBusinessMetrics{}, noOp)

	assert.NotPanics(t, func() {
		Observe(context.Background(), noOp, DomainAuth, "login", time.Now(), nil)
		noOp.RecordDuration(context.Background(), DomainCatalog, "product_create", time.Second, StatusError)
	})
}

func TestBusinessMetrics_Exposition(t *testing.T) {
	provider, bm := newTestBusinessMetrics(t, "integration_test")
	ctx := context.Background()

	bm.RecordOperation(ctx, DomainAuth, "register", StatusSuccess)
	bm.RecordOperation(ctx, DomainAuth, "register", StatusSuccess)
	bm.RecordOperation(ctx, DomainAuth, "register", StatusRejected)
	bm.RecordOperation(ctx, DomainCatalog, "product_create", StatusSuccess)

	bm.RecordDuration(ctx, DomainAuth, "register", 50*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, DomainAuth, "register", 60*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, DomainCatalog, "product_create", 10*time.Millisecond, StatusSuccess)

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	output := w.Body.String()

	assertBizMetricLine(t, output, `integration_test_operations_total`,
		`domain="auth".*operation="register".*status="success"`, `2`)
	assertBizMetricLine(t, output, `integration_test_operations_total`,
		`domain="auth".*operation="register".*status="rejected"`, `1`)
	assertBizMetricLine(t, output, `integration_test_operations_total`,
		`domain="catalog".*operation="product_create".*status="success"`, `1`)
	assertBizMetricLine(t, output, `integration_test_operation_duration_seconds_count`,
		`domain="auth".*operation="register".*status="success"`, `2`)
}

func TestObserve(t *testing.T) {
	provider, bm := newTestBusinessMetrics(t, "observe_test")
	ctx := context.Background()

	Observe(ctx, bm, DomainAuth, "login", time.Now(), nil)
	Observe(ctx, bm, DomainAuth, "login", time.Now(), apperrors.ErrUnauthorized)
	Observe(ctx, bm, DomainCatalog, "product_list", time.Now(), errors.New("db down"))

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	output := w.Body.String()

	assertBizMetricLine(t, output, `observe_test_operations_total`,
		`domain="auth".*operation="login".*status="success"`, `1`)
	assertBizMetricLine(t, output, `observe_test_operations_total`,
		`domain="auth".*operation="login".*status="rejected"`, `1`)
	assertBizMetricLine(t, output, `observe_test_operations_total`,
		`domain="catalog".*operation="product_list".*status="error"`, `1`)
	assertBizMetricLine(t, output, `observe_test_operation_duration_seconds_count`,
		`domain="catalog".*operation="product_list".*status="error"`, `1`)
}
