package api

import (
	"net/http"

	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	q queries.NotificationQueries
}

func NewNotificationHandler(q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{q: q}
}

// @Summary List failed notifications
// @Description Deliveries that exhausted their retries, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[queries.NotificationJobView]
// @Failure 403 {object} httperr.Response
// @Router /notifications/failed [get]
func (h *NotificationHandler) ListFailed(c *gin.Context) {
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}
	items, next, err := h.q.ListFailed(c.Request.Context(), principal(c), page.Cursor(), page.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, next))
}
