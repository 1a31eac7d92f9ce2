package api

import (
	"net/http"

	resdto "loyalty-engine/internal/handler/dto/response"
	"loyalty-engine/internal/handler/httperr"
	"loyalty-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the signed-in client's own account.
type ClientHandler struct {
	q        queries.ClientQueries
	benefits queries.BenefitQueries
}

func NewClientHandler(q queries.ClientQueries, benefits queries.BenefitQueries) *ClientHandler {
	return &ClientHandler{q: q, benefits: benefits}
}

// @Summary Own points balance
// @Tags client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PointsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/client/points [get]
func (h *ClientHandler) Points(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	view, err := h.q.Points(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPointsView(view))
}

// @Summary Own profile
// @Tags client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/client/profile [get]
func (h *ClientHandler) Profile(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	view, err := h.q.Profile(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Own points journal
// @Description Newest first. Also served at /api/v1/client/points/history.
// @Tags client
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PointsTransactionPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/client/points/transactions [get]
func (h *ClientHandler) Transactions(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	views, next, err := h.q.Transactions(c.Request.Context(), actor.ID, queryCursor(c), queryLimit(c))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPointsTransactionPage(views, next))
}

// @Summary Own closed orders
// @Tags client
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.OrderPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/client/orders [get]
func (h *ClientHandler) Orders(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	views, next, err := h.q.Orders(c.Request.Context(), actor.ID, queryCursor(c), queryLimit(c))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewOrderPage(views, next))
}

// @Summary Benefits the client can redeem today
// @Tags client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AvailableBenefitsResponse
// @Router /api/v1/client/benefits [get]
func (h *ClientHandler) Benefits(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	view, err := h.benefits.AvailableForClient(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableBenefitsView(view))
}
