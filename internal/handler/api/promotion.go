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

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

// @Summary Create promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.PromotionRequest
	if !bindJSON(c, &req) {
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), principal(c), params)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/promotions/"+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List promotions
// @Tags promotions
// @Produce json
// @Param branch_id query string false "Branch filter"
// @Param active query bool false "Only promotions running today"
// @Success 200 {object} resdto.List[queries.PromotionView]
// @Failure 400 {object} httperr.Response
// @Router /promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	var q reqdto.ListPromotionsQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.q.List(c.Request.Context(), reqdto.OptionalUUID(q.BranchID), q.Active)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(items))
}

// @Summary Get promotion
// @Tags promotions
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} queries.PromotionView
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
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

// @Summary Replace promotion
// @Tags promotions
// @Accept json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [put]
func (h *PromotionHandler) Replace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PromotionRequest
	if !bindJSON(c, &req) {
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if err := h.cmds.Replace(c.Request.Context(), principal(c), id, params); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete promotion
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
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

type DiscountHandler struct {
	cmds commands.DiscountCommands
	q    queries.DiscountQueries
}

func NewDiscountHandler(cmds commands.DiscountCommands, q queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{cmds: cmds, q: q}
}

// @Summary Create discount
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DiscountRequest true "Discount"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	var req reqdto.DiscountRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), principal(c), req.ToParams())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/discounts/"+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List discounts
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.List[queries.DiscountView]
// @Failure 403 {object} httperr.Response
// @Router /discounts [get]
func (h *DiscountHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(items))
}

// @Summary Get discount
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} queries.DiscountView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Check discount code
// @Description Reports whether a code can be redeemed right now.
// @Tags discounts
// @Produce json
// @Param code path string true "Discount code"
// @Success 200 {object} queries.DiscountCheck
// @Router /discounts/code/{code} [get]
func (h *DiscountHandler) CheckCode(c *gin.Context) {
	check, err := h.q.CheckCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

// @Summary Replace discount
// @Tags discounts
// @Accept json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Param request body reqdto.DiscountRequest true "Discount"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id} [put]
func (h *DiscountHandler) Replace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.DiscountRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Replace(c.Request.Context(), principal(c), id, req.ToParams()); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete discount
// @Tags discounts
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *gin.Context) {
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
