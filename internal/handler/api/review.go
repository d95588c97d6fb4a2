package api

import (
	"net/http"

	reqdto "salon-backend/internal/handler/dto/request"
	resdto "salon-backend/internal/handler/dto/response"
	"salon-backend/internal/handler/httperr"
	"salon-backend/internal/usecase/commands"
	"salon-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a completed appointment of your own, once.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), principal(c), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/reviews/"+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary Get review
// @Description Get a review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} queries.ReviewView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update review
// @Description Update own review by ID
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} queries.ReviewView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), principal(c), id, req.ToInput()); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List stylist reviews
// @Description List reviews of a stylist with keyset pagination, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Stylist ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[queries.ReviewView]
// @Failure 400 {object} httperr.Response
// @Router /stylists/{id}/reviews [get]
func (h *ReviewHandler) ListByStylist(c *gin.Context) {
	stylistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}
	items, next, err := h.q.ListByStylist(c.Request.Context(), stylistID, page.Cursor(), page.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, next))
}

// @Summary Stylist rating
// @Description Review count and average rating of a stylist
// @Tags reviews
// @Produce json
// @Param id path string true "Stylist ID"
// @Success 200 {object} queries.RatingSummary
// @Failure 400 {object} httperr.Response
// @Router /stylists/{id}/rating [get]
func (h *ReviewHandler) StylistRating(c *gin.Context) {
	stylistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.q.StylistRating(c.Request.Context(), stylistID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
