package api

import (
	"net/http"

	"loyalty-engine/internal/domain/user"
	reqdto "loyalty-engine/internal/handler/dto/request"
	resdto "loyalty-engine/internal/handler/dto/response"
	"loyalty-engine/internal/handler/httperr"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/commands"
	"loyalty-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BenefitHandler struct {
	cmds commands.BenefitCommands
	q    queries.BenefitQueries
}

func NewBenefitHandler(cmds commands.BenefitCommands, q queries.BenefitQueries) *BenefitHandler {
	return &BenefitHandler{cmds: cmds, q: q}
}

// @Summary List benefits
// @Description List live benefits, newest first
// @Tags benefits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BenefitResponse
// @Failure 401 {object} httperr.Response
// @Router /api/v1/benefits [get]
func (h *BenefitHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitViews(views))
}

// @Summary List benefits of one type
// @Tags benefits
// @Produce json
// @Security BearerAuth
// @Param type path string true "DISCOUNT or FREE_PRODUCT"
// @Success 200 {array} resdto.BenefitResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/benefits/type/{type} [get]
func (h *BenefitHandler) ListByType(c *gin.Context) {
	views, err := h.q.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitViews(views))
}

// @Summary Get benefit
// @Tags benefits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/benefits/{id} [get]
func (h *BenefitHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitView(view))
}

// @Summary Create benefit
// @Description Create a benefit. A live benefit with the same normalized definition yields 409.
// @Tags benefits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBenefitRequest true "Benefit definition"
// @Success 201 {object} resdto.BenefitResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/benefits [post]
func (h *BenefitHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBenefitRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToDefinition(), actor)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBenefitView(view))
}

// @Summary Delete benefit
// @Description Soft delete. Orders closed with the benefit keep their snapshot.
// @Tags benefits
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/benefits/{id} [delete]
func (h *BenefitHandler) Delete(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		httperr.Handle(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Benefits available for a balance
// @Description Benefits payable with the given points today. day=any skips the weekday filter.
// @Description Clients are limited to their own balance.
// @Tags benefits
// @Produce json
// @Security BearerAuth
// @Param points path string true "Points"
// @Param day query string false "any"
// @Success 200 {object} resdto.AvailableBenefitsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/benefits/available/{points} [get]
func (h *BenefitHandler) Available(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	pts, err := decimal.NewFromString(c.Param("points"))
	if err != nil {
		httperr.Handle(c, errs.Invalid("points", "must be a number"))
		return
	}

	filter := queries.AvailabilityFilter{
		Points: pts,
		AnyDay: c.Query("day") == "any",
	}
	if actor.Role == user.RoleClient {
		filter.ClientID = &actor.ID
	}

	view, err := h.q.Available(c.Request.Context(), filter)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableBenefitsView(view))
}

// @Summary Benefits available to a client today
// @Description Used by staff while closing an order for the client
// @Tags benefits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.AvailableBenefitsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/clients/{id}/benefits/available [get]
func (h *BenefitHandler) AvailableForClient(c *gin.Context) {
	clientID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.AvailableForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableBenefitsView(view))
}

// @Summary Check for a duplicate benefit
// @Description Advisory check; creation can still be rejected by a concurrent create
// @Tags benefits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBenefitRequest true "Benefit definition"
// @Success 200 {object} resdto.DuplicateCheckResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/benefits/check-duplicate [post]
func (h *BenefitHandler) CheckDuplicate(c *gin.Context) {
	var req reqdto.CreateBenefitRequest
	if !bindJSON(c, &req) {
		return
	}
	dup, err := h.q.CheckDuplicate(c.Request.Context(), req.ToDefinition())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DuplicateCheckResponse{Duplicate: dup})
}
