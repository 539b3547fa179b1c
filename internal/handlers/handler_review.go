package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/dto"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reviewHandler handles HTTP requests related to product reviews.
type reviewHandler struct {
	reviewService portssvc.ReviewSvcFacade
}

func newReviewHandler(rs portssvc.ReviewSvcFacade) *reviewHandler {
	return &reviewHandler{reviewService: rs}
}

// registerReviewRoutes registers the review routes on the authenticated group.
func registerReviewRoutes(rg *gin.RouterGroup, reviewService portssvc.ReviewSvcFacade) {
	h := newReviewHandler(reviewService)

	products := rg.Group("/products/:productID/reviews")
	{
		products.GET("", h.listProductReviews)
		products.POST("", h.createReview)
	}

	reviews := rg.Group("/reviews")
	{
		reviews.GET("/:reviewID", h.getReview)
		reviews.PATCH("/:reviewID", h.updateReview)
		reviews.DELETE("/:reviewID", h.deleteReview)
	}
}

// listProductReviews godoc
// @Summary List a product's reviews
// @Tags reviews
// @Produce json
// @Param productID path string true "Product ID"
// @Param page query int false "Page (1-based)" default(1)
// @Param page_size query int false "Page size" default(10)
// @Param min_rating query int false "Minimum rating"
// @Param max_rating query int false "Maximum rating"
// @Param sort query string false "newest, oldest, highest, lowest or helpful"
// @Success 200 {object} dto.ListReviewsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{productID}/reviews [get]
func (h *reviewHandler) listProductReviews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var params dto.ListReviewsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	page, err := h.reviewService.GetProductReviews(c.Request.Context(), productID, params.ToQuery())
	if err != nil {
		respondError(c, logger, err, "Failed to load reviews")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReviewsResponse(page, params))
}

// createReview godoc
// @Summary Review a product
// @Tags reviews
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param review body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /products/{productID}/reviews [post]
func (h *reviewHandler) createReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), customer, req.ToInput(c.Param("productID")))
	if err != nil {
		respondError(c, logger, err, "Failed to submit review")
		return
	}
	logger.Info("Review created", slog.String("review_id", review.ID))
	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// getReview godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param reviewID path string true "Review ID"
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reviews/{reviewID} [get]
func (h *reviewHandler) getReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	review, err := h.reviewService.GetReview(c.Request.Context(), c.Param("reviewID"))
	if err != nil {
		respondError(c, logger, err, "Failed to load review")
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// updateReview godoc
// @Summary Edit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewID path string true "Review ID"
// @Param review body dto.UpdateReviewRequest true "Fields to change"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reviews/{reviewID} [patch]
func (h *reviewHandler) updateReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), customer, c.Param("reviewID"), req.ToInput())
	if err != nil {
		respondError(c, logger, err, "Failed to update review")
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// deleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Param reviewID path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reviews/{reviewID} [delete]
func (h *reviewHandler) deleteReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), customer, c.Param("reviewID")); err != nil {
		respondError(c, logger, err, "Failed to delete review")
		return
	}
	c.Status(http.StatusNoContent)
}
