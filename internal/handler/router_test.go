//go:build unit

package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/handler/api"
	"salon-backend/internal/handler/middleware"
	"salon-backend/internal/infra/metrics"
	"salon-backend/internal/infra/ratelimit"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/testutil/authtest"
	"salon-backend/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

// newTestRouter wires every route with nil use cases. Only paths that stop in
// middleware may be exercised.
func newTestRouter(t *testing.T, cfg config.Config, pingErr error) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtHelper := authtest.NewJWTHelper()
	engine := gin.New()
	NewRouter(engine, RouterDeps{
		Config:  cfg,
		Logger:  middleware.NewLogger(cfg.Log),
		Auth:    middleware.NewAuthMiddleware(jwtHelper.Service()),
		Limiter: ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window, clock.NewRealClock()),
		Metrics: metrics.New("salon_test"),
	}, Handlers{
		Auth:         api.NewAuthHandler(nil, nil),
		Account:      api.NewAccountHandler(nil, nil),
		Appointment:  api.NewAppointmentHandler(nil, nil, nil),
		Leave:        api.NewLeaveHandler(nil, nil, clock.NewRealClock()),
		Branch:       api.NewBranchHandler(nil, nil),
		Catalog:      api.NewCatalogHandler(nil, nil),
		Review:       api.NewReviewHandler(nil, nil),
		Transaction:  api.NewTransactionHandler(nil, nil),
		Promotion:    api.NewPromotionHandler(nil, nil),
		Discount:     api.NewDiscountHandler(nil, nil),
		Team:         api.NewTeamHandler(nil, nil),
		Notification: api.NewNotificationHandler(nil),
		Health:       api.NewHealthHandler(stubPinger{err: pingErr}),
	})
	return engine, jwtHelper
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestRouter(t, config.NewTestConfig(), nil)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/ready", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ReadyReportsDatabaseOutage(t *testing.T) {
	r, _ := newTestRouter(t, config.NewTestConfig(), errors.New("connection refused"))

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/ready", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, config.NewTestConfig(), nil)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/nothing-here", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Route not found")
}

func TestRouter_Guards(t *testing.T) {
	r, jwtHelper := newTestRouter(t, config.NewTestConfig(), nil)
	customer := jwtHelper.Token(t, uuid.New(), account.RoleCustomer)
	stylist := jwtHelper.Token(t, uuid.New(), account.RoleStylist)
	manager := jwtHelper.Token(t, uuid.New(), account.RoleManager)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"admins need a token", http.MethodGet, "/api/admins", "", http.StatusUnauthorized},
		{"customers cannot list admins", http.MethodGet, "/api/admins", customer, http.StatusForbidden},
		{"managers cannot list admins", http.MethodGet, "/api/admins", manager, http.StatusForbidden},
		{"stylists cannot create services", http.MethodPost, "/api/services", stylist, http.StatusForbidden},
		{"customers cannot approve leave", http.MethodPatch, "/api/leave-requests/" + uuid.NewString() + "/approve", customer, http.StatusForbidden},
		{"booking needs a token", http.MethodPost, "/api/appointments", "", http.StatusUnauthorized},
		{"failure log is admin only", http.MethodGet, "/api/notifications/failed", manager, http.StatusForbidden},
		{"expired token", http.MethodGet, "/api/auth/me", jwtHelper.ExpiredToken(t, uuid.New(), account.RoleAdmin), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, tt.method, tt.path, nil, tt.token)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_LoginIsRateLimited(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, Limit: 2, Window: time.Minute}
	r, _ := newTestRouter(t, cfg, nil)

	// An empty body fails binding before the nil use case is reached.
	for i := 0; i < 2; i++ {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
	rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{}, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, config.NewTestConfig(), nil)

	httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")
	rec := httptest.PerformRequest(t, r, http.MethodGet, "/metrics", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "salon_test_http_requests_total"), rec.Body.String())
}
