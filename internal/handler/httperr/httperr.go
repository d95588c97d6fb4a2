package httperr

import (
	"log/slog"
	"net/http"

	"salon-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

const internalMessage = "Internal server error"

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Respond classifies a use case error once. Anything without a kind is a 500 whose
// details stay in the log.
func Respond(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)
	msg := internalMessage
	if kind != errs.KindInternal {
		msg = errs.Message(err)
	} else {
		slog.ErrorContext(c.Request.Context(), "unhandled error", "error", err, "path", c.FullPath())
	}
	AbortWithError(c, status, err, msg, nil)
}

// BadRequest reports a binding or parameter failure.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, bindingDetail(err))
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
