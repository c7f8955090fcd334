package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success_RecordByRoutePattern", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))
		router.GET("/catalog/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		})

		for _, id := range []string{"a", "b", "c"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/"+id, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		assertBizMetricLine(
			t,
			scrape(t, provider),
			`test_app_http_requests_total`,
			`method="GET".*path="/catalog/:id".*status_code="200"`,
			`3`,
		)
	})

	t.Run("Success_CountDenials", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))
		router.Use(func(c *gin.Context) {
			if c.GetHeader("Authorization") == "" {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.Next()
		})
		router.POST("/catalog", func(c *gin.Context) {
			c.Status(http.StatusForbidden)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/catalog", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		req := httptest.NewRequest(http.MethodPost, "/catalog", nil)
		req.Header.Set("Authorization", "Bearer x")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		output := scrape(t, provider)
		assertBizMetricLine(
			t,
			output,
			`test_app_http_requests_denied_total`,
			`path="/catalog".*status_code="401"`,
			`1`,
		)
		assertBizMetricLine(
			t,
			output,
			`test_app_http_requests_denied_total`,
			`path="/catalog".*status_code="403"`,
			`1`,
		)
		assertBizMetricLine(
			t,
			output,
			`test_app_http_requests_denied_total`,
			`path="unmatched".*status_code="401"`,
			`1`,
		)
	})
}

func TestIsDenied(t *testing.T) {
	assert.True(t, isDenied(http.StatusUnauthorized))
	assert.True(t, isDenied(http.StatusForbidden))
	assert.True(t, isDenied(http.StatusTooManyRequests))
	assert.False(t, isDenied(http.StatusOK))
	assert.False(t, isDenied(http.StatusNotFound))
	assert.False(t, isDenied(http.StatusBadRequest))
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "RoutePattern", input: "/catalog/:id", expected: "/catalog/:id"},
		{name: "EmptyPath", input: "", expected: "unmatched"},
		{name: "RootPath", input: "/", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}
