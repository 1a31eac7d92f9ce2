package api

import (
	"net/http"

	reqdto "loyalty-engine/internal/handler/dto/request"
	resdto "loyalty-engine/internal/handler/dto/response"
	"loyalty-engine/internal/handler/httperr"
	"loyalty-engine/internal/usecase/commands"
	"loyalty-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.ConversionCommands
	q    queries.ConversionQueries
}

func NewSettingsHandler(cmds commands.ConversionCommands, q queries.ConversionQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Current points conversion rate
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ConversionRateResponse
// @Router /api/v1/settings/points-conversion [get]
func (h *SettingsHandler) GetConversionRate(c *gin.Context) {
	view, err := h.q.Current(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConversionRateView(view))
}

// @Summary Change the points conversion rate
// @Description Appends an entry to the rate history. Closed orders keep the rate they were closed with.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateConversionRateRequest true "New rate"
// @Success 200 {object} resdto.ConversionRateEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/v1/settings/points-conversion [put]
func (h *SettingsHandler) UpdateConversionRate(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateConversionRateRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.cmds.Update(c.Request.Context(), req.ConversionRate, actor)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConversionRateEntryView(entry))
}

// @Summary Conversion rate history
// @Description Most recent change first
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ConversionRateHistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/settings/points_conversion_rate/history [get]
func (h *SettingsHandler) ConversionRateHistory(c *gin.Context) {
	views, next, err := h.q.History(c.Request.Context(), queryCursor(c), queryLimit(c))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewConversionRateHistory(views, next))
}
