package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"salon-backend/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Bearer tokens and request IDs must cross origins whatever the env lists.
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", requestIDHeader}
	requiredExposeHeaders = []string{"Location", requestIDHeader}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withDefaults(cfg.AllowMethods, http.MethodOptions),
		AllowHeaders:     withDefaults(cfg.AllowHeaders, requiredAllowHeaders...),
		ExposeHeaders:    withDefaults(cfg.ExposeHeaders, requiredExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"allow_headers", corsCfg.AllowHeaders,
	)
	return cors.New(corsCfg)
}

// withDefaults appends each of extra not already in list, ignoring case.
func withDefaults(list []string, extra ...string) []string {
	out := slices.Clone(list)
	for _, h := range extra {
		canon := http.CanonicalHeaderKey(h)
		if !slices.ContainsFunc(out, func(v string) bool { return http.CanonicalHeaderKey(v) == canon }) {
			out = append(out, h)
		}
	}
	return out
}
