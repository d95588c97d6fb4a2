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

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateService(c.Request.Context(), principal(c), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/services/"+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List priced services
// @Description Only services with an effective price on the date (default today) are listed.
// @Tags services
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.List[queries.ServiceView]
// @Failure 400 {object} httperr.Response
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	date := c.Query("date")
	on, err := reqdto.OptionalDate(&date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	items, err := h.q.ListServices(c.Request.Context(), on)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(items))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} queries.ServiceView
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update service
// @Tags services
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [patch]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateService(c.Request.Context(), principal(c), id, req.ToUpdate()); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteService(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add service rate
// @Description The effective price on a day is the lowest rate whose window contains it.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.CreateRateRequest true "Rate"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id}/rates [post]
func (h *CatalogHandler) AddRate(c *gin.Context) {
	serviceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateRateRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	id, err := h.cmds.AddRate(c.Request.Context(), principal(c), serviceID, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary List service rates
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.List[queries.RateView]
// @Failure 404 {object} httperr.Response
// @Router /services/{id}/rates [get]
func (h *CatalogHandler) ListRates(c *gin.Context) {
	serviceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListRates(c.Request.Context(), serviceID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(items))
}

// @Summary Delete service rate
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param rateId path string true "Rate ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id}/rates/{rateId} [delete]
func (h *CatalogHandler) DeleteRate(c *gin.Context) {
	serviceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rateID, ok := pathID(c, "rateId")
	if !ok {
		return
	}
	if err := h.cmds.DeleteRate(c.Request.Context(), principal(c), serviceID, rateID); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
