//go:build unit

package api_test

import (
	"salon-backend/internal/handler/middleware"
	"salon-backend/internal/testutil/authtest"

	"github.com/gin-gonic/gin"
)

// newTestEngine returns an engine whose routes see the principal from a real token.
func newTestEngine() (*gin.Engine, *middleware.AuthMiddleware, *authtest.JWTHelper) {
	gin.SetMode(gin.TestMode)
	jwtHelper := authtest.NewJWTHelper()
	am := middleware.NewAuthMiddleware(jwtHelper.Service())
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	return engine, am, jwtHelper
}
