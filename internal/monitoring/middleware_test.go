package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRequests(t *testing.T) {
	metrics, _ := NewMetrics()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(metrics))
	router.GET("/users/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/42", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Labeled by route template, not the concrete URL.
	count := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/users/:id", "200"))
	assert.Equal(t, 1.0, count)
}

func TestMiddlewareRecordsUnmatchedPath(t *testing.T) {
	metrics, _ := NewMetrics()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(metrics))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	count := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/nope", "404"))
	assert.Equal(t, 1.0, count)
}

func TestScraperAndStoreCounters(t *testing.T) {
	metrics, _ := NewMetrics()

	metrics.RecordPageFetch("ok")
	metrics.RecordPageFetch("ok")
	metrics.RecordPageFetch("failed")
	metrics.RecordProfileScrape("ok")
	metrics.RecordScrapeRun(3 * time.Second)
	metrics.RecordInsert("professors")
	metrics.RecordInsertError("professors")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.PagesFetched.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PagesFetched.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ProfilesScraped.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RecordsInserted.WithLabelValues("professors")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.InsertErrors.WithLabelValues("professors")))
}
