package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/dto"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)
	rg.GET("/activity", h.listActivity)
}

// listActivity godoc
// @Summary The customer's past notices, newest first
// @Tags activity
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param next_token query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListActivityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /activity [get]
func (h *activityHandler) listActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	var params dto.ListActivityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	page, err := h.activityService.ListActivity(c.Request.Context(), customer, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to load activity")
		return
	}
	c.JSON(http.StatusOK, dto.ToListActivityResponse(page))
}
