//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/handler/middleware"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID.String(), "role": p.Role.String()})
	})
	return r
}

func get(r http.Handler, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	am := middleware.NewAuthMiddleware(svc)
	r := newEngine(am.RequireAuth())

	userID := uuid.New()
	token, _, err := svc.GenerateToken(userID, account.RoleStylist)
	require.NoError(t, err)

	t.Run("bearer prefix", func(t *testing.T) {
		rec := get(r, "/whoami", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID.String())
		assert.Contains(t, rec.Body.String(), `"role":"stylist"`)
	})

	t.Run("raw token", func(t *testing.T) {
		rec := get(r, "/whoami", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := get(r, "/whoami", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Access token required"}}`, rec.Body.String())
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other, _, _ := jwt.NewService("other", time.Hour).GenerateToken(userID, account.RoleAdmin)
		rec := get(r, "/whoami", "Bearer "+other)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	r := newEngine(middleware.NewAuthMiddleware(svc).OptionalAuth())

	rec := get(r, "/whoami", "Bearer garbage")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"anonymous":true}`, rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	am := middleware.NewAuthMiddleware(jwt.NewService("s", time.Hour))
	as := func(role account.Role) gin.HandlerFunc {
		return func(c *gin.Context) {
			middleware.SetPrincipal(c, auth.Principal{UserID: uuid.New(), Role: role})
		}
	}

	assert.Equal(t, http.StatusForbidden, get(newEngine(as(account.RoleCustomer), am.RequireRole(account.RoleManager, account.RoleAdmin)), "/whoami", "").Code)
	assert.Equal(t, http.StatusOK, get(newEngine(as(account.RoleManager), am.RequireRole(account.RoleManager, account.RoleAdmin)), "/whoami", "").Code)
	assert.Equal(t, http.StatusInternalServerError, get(newEngine(am.RequireRole(account.RoleAdmin)), "/whoami", "").Code)
}

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func TestRateLimit(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute}

	t.Run("over the limit", func(t *testing.T) {
		l := &stubLimiter{allow: false}
		rec := get(newEngine(middleware.RateLimit(l, cfg, "login")), "/whoami", "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Len(t, l.keys, 1)
		assert.Equal(t, "login:192.0.2.1", l.keys[0])
	})

	t.Run("limiter down, fail open", func(t *testing.T) {
		open := cfg
		open.FailOpen = true
		rec := get(newEngine(middleware.RateLimit(&stubLimiter{err: errors.New("redis down")}, open, "login")), "/whoami", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("limiter down, fail closed", func(t *testing.T) {
		rec := get(newEngine(middleware.RateLimit(&stubLimiter{err: errors.New("redis down")}, cfg, "login")), "/whoami", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		l := &stubLimiter{}
		rec := get(newEngine(middleware.RateLimit(l, config.RateLimitConfig{}, "login")), "/whoami", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, l.keys)
	})
}

type recordingObserver struct {
	route  string
	status int
}

func (o *recordingObserver) ObserveHTTP(_ string, route string, status int, _ time.Duration) {
	o.route, o.status = route, status
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	obs := &recordingObserver{}
	r := gin.New()
	r.Use(middleware.Metrics(obs))
	r.GET("/api/appointments/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	get(r, "/api/appointments/"+uuid.NewString(), "")
	assert.Equal(t, "/api/appointments/:id", obs.route)
	assert.Equal(t, http.StatusNoContent, obs.status)
}

func TestCustomRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := get(r, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())
}

func TestLoggingMiddlewareEchoesRequestID(t *testing.T) {
	l := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "Asia/Singapore", TimeFormat: time.RFC3339})
	r := newEngine(l.LoggingMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	rec = get(r, "/whoami", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
