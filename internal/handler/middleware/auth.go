package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/domain/auth"
	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxPrincipalKey = "principal"

var (
	errTokenRequired = errs.Unauthorized("Access token required")
	errTokenInvalid  = errs.Unauthorized("Invalid or expired token")
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		p, err := m.principal(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenInvalid, "Invalid or expired token", nil)
			return
		}

		SetPrincipal(c, p)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a valid token is present and otherwise
// continues anonymously. Public signup uses it so staff can create other roles on the same route.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if p, err := m.principal(token); err == nil {
				SetPrincipal(c, p)
			}
		}
		c.Next()
	}
}

// RequireRole rejects callers outside roles before the handler runs. Use cases
// still check; this only keeps obviously forbidden requests off the database.
func (m *AuthMiddleware) RequireRole(roles ...account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			// should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("principal missing"), "Internal server error", nil)
			return
		}
		if err := p.Require(roles...); err != nil {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) principal(token string) (auth.Principal, error) {
	claims, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		return auth.Principal{}, err
	}
	role, err := account.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.Principal{UserID: claims.UserID, Role: role}, nil
}

// bearerToken accepts both "Bearer <token>" and the raw token.
func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) > len("Bearer ") && strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return h
}

func SetPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(ctxPrincipalKey, p)
}

func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}
