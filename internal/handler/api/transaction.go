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

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary Record in-person payment
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordTransactionRequest true "Payment"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /transactions [post]
func (h *TransactionHandler) Record(c *gin.Context) {
	var req reqdto.RecordTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Record(c.Request.Context(), principal(c), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/transactions/"+id.String())
	c.JSON(http.StatusCreated, resdto.Created(id))
}

// @Summary Start online payment
// @Description Opens a payment intent with the provider. The client confirms it with client_secret.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OnlinePaymentRequest true "Payment"
// @Success 201 {object} resdto.OnlinePaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /transactions/online [post]
func (h *TransactionHandler) StartOnline(c *gin.Context) {
	var req reqdto.OnlinePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.cmds.StartOnline(c.Request.Context(), principal(c), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOnlinePayment(res))
}

// @Summary Refund transaction
// @Tags transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /transactions/{id}/refund [patch]
func (h *TransactionHandler) Refund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Refund(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} queries.TransactionView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
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

// @Summary List transactions
// @Description Customers only see their own.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Customer filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[queries.TransactionView]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var q reqdto.ListTransactionsQuery
	if !bindQuery(c, &q) {
		return
	}
	f := queries.TransactionFilter{CustomerID: reqdto.OptionalUUID(q.CustomerID)}
	items, next, err := h.q.List(c.Request.Context(), principal(c), f, q.Cursor(), q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(items, next))
}
