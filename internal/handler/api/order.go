package api

import (
	"net/http"

	reqdto "loyalty-engine/internal/handler/dto/request"
	resdto "loyalty-engine/internal/handler/dto/response"
	"loyalty-engine/internal/handler/httperr"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/commands"
	"loyalty-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Open an order. Unit prices are captured from the product table.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Replays the first result for an identical request"
// @Param request body reqdto.CreateOrderRequest true "Order lines"
// @Success 201 {object} resdto.OrderResponse
// @Success 200 {object} resdto.OrderResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	idempotencyKey, ok := h.getIdempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), in, actor, idempotencyKey)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	if result.IsReplayed {
		c.Header(headerReplayed, "true")
		c.JSON(http.StatusOK, resdto.FromOrderView(result.Order))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(result.Order))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Close order
// @Description Assign the client, optionally redeem a benefit and award points in one transaction
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CloseOrderRequest true "Close request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/v1/orders/close [post]
func (h *OrderHandler) Close(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.CloseOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Close(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// getIdempotencyKey returns nil when the optional header is absent.
func (h *OrderHandler) getIdempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	keyStr := c.GetHeader(headerIdempotencyKey)
	if keyStr == "" {
		return nil, true
	}
	key, err := uuid.Parse(keyStr)
	if err != nil {
		httperr.Handle(c, errs.Invalid(headerIdempotencyKey, "must be a UUID"))
		return nil, false
	}
	return &key, true
}
