package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/dto"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

type variantHandler struct {
	variantService portssvc.VariantSvc
}

func newVariantHandler(vs portssvc.VariantSvc) *variantHandler {
	return &variantHandler{variantService: vs}
}

func registerVariantRoutes(rg *gin.RouterGroup, variantService portssvc.VariantSvc) {
	h := newVariantHandler(variantService)
	rg.GET("/products/:productID/variants", h.listVariants)
}

// listVariants godoc
// @Summary Variant selector options for a product
// @Description Each variant carries its effective price, discount, stock badge and selection state
// @Tags variants
// @Produce json
// @Param productID path string true "Product ID"
// @Param selected query string false "Currently selected variant ID"
// @Success 200 {object} dto.ListVariantsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{productID}/variants [get]
func (h *variantHandler) listVariants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	views, err := h.variantService.GetVariantViews(c.Request.Context(), productID, c.Query("selected"))
	if err != nil {
		respondError(c, logger, err, "Failed to load variants")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVariantsResponse(productID, views))
}
