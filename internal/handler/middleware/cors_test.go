//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salon-backend/internal/handler/middleware"
	"salon-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSEngine(cfg config.CORSConfig) *gin.Engine {
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/branches", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func headerList(h http.Header, key string) []string {
	var out []string
	for _, v := range strings.Split(h.Get(key), ",") {
		out = append(out, http.CanonicalHeaderKey(strings.TrimSpace(v)))
	}
	return out
}

func TestCORS(t *testing.T) {
	// a deployment that forgot Authorization in CORS_ALLOW_HEADERS
	cfg := config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "content-type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}
	r := newCORSEngine(cfg)

	t.Run("preflight allows bearer tokens", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/branches", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "authorization")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		allowed := headerList(rec.Header(), "Access-Control-Allow-Headers")
		assert.Contains(t, allowed, "Authorization")
		assert.Contains(t, allowed, "X-Request-Id")
		// configured entries kept once
		assert.Equal(t, 1, countOf(allowed, "Content-Type"))
		assert.Contains(t, headerList(rec.Header(), "Access-Control-Allow-Methods"), "Options")
	})

	t.Run("responses expose request id and location", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/branches", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		exposed := headerList(rec.Header(), "Access-Control-Expose-Headers")
		assert.Contains(t, exposed, "Content-Length")
		assert.Contains(t, exposed, "Location")
		assert.Contains(t, exposed, "X-Request-Id")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/branches", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func countOf(list []string, v string) int {
	n := 0
	for _, s := range list {
		if s == v {
			n++
		}
	}
	return n
}
