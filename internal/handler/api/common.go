package api

import (
	"context"
	"strconv"

	"salon-backend/internal/domain/auth"
	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// principal returns the caller, or the zero principal on public routes.
func principal(c *gin.Context) auth.Principal {
	p, _ := middleware.GetPrincipal(c)
	return p
}

// pathID parses a uuid path parameter and answers 400 when it is malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return false
	}
	return true
}

// queryYear reads ?year=, defaulting to fallback.
func queryYear(c *gin.Context, fallback int) (int, bool) {
	v := c.Query("year")
	if v == "" {
		return fallback, true
	}
	y, err := strconv.Atoi(v)
	if err != nil || y < 1970 || y > 9999 {
		httperr.BadRequest(c, strconv.ErrSyntax, "Invalid year")
		return 0, false
	}
	return y, true
}

type idCommand func(ctx context.Context, p auth.Principal, id uuid.UUID) error
