package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront/internal/core/domain"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/dto"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/SscSPs/storefront/internal/utils"
	"github.com/gin-gonic/gin"
)

// subscriptionHandler handles the subscription management page.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
	posthog             *utils.PosthogClientWrapper
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade, posthogClient *utils.PosthogClientWrapper) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss, posthog: posthogClient}
}

// registerSubscriptionRoutes registers routes related to subscriptions.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newSubscriptionHandler(subscriptionService, posthogClient)

	subs := rg.Group("/subscriptions")
	{
		subs.GET("", h.listSubscriptions)
		subs.POST("", h.createSubscription)
		subs.POST("/refresh", h.refreshSubscriptions)

		subs.GET("/:subscriptionID", h.getSubscription)
		subs.PATCH("/:subscriptionID", h.updateSubscription)
		subs.DELETE("/:subscriptionID", h.deleteSubscription)

		subs.POST("/:subscriptionID/pause", h.lifecycle(domain.ActionPause))
		subs.POST("/:subscriptionID/resume", h.lifecycle(domain.ActionResume))
		subs.POST("/:subscriptionID/cancel", h.lifecycle(domain.ActionCancel))
		subs.POST("/:subscriptionID/reactivate", h.lifecycle(domain.ActionReactivate))
		subs.PUT("/:subscriptionID/auto-renew", h.setAutoRenew)

		subs.POST("/:subscriptionID/products", h.addProduct)
		subs.DELETE("/:subscriptionID/products/:productID", h.removeProduct)

		subs.GET("/:subscriptionID/confirmations/:action", h.getConfirmation)
	}
}

// listSubscriptions godoc
// @Summary List the customer's subscriptions
// @Description Served from the per-customer cache when warm
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.ListSubscriptionsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions [get]
func (h *subscriptionHandler) listSubscriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	subs, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), customer)
	if err != nil {
		respondError(c, logger, err, "Failed to load subscriptions")
		return
	}
	c.JSON(http.StatusOK, dto.ListSubscriptionsResponse{Subscriptions: dto.ToSubscriptionResponses(subs)})
}

// refreshSubscriptions godoc
// @Summary Refetch the customer's subscriptions
// @Description Bypasses and replaces the cached list
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.ListSubscriptionsResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/refresh [post]
func (h *subscriptionHandler) refreshSubscriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	subs, err := h.subscriptionService.RefreshSubscriptions(c.Request.Context(), customer)
	if err != nil {
		respondError(c, logger, err, "Failed to refresh subscriptions")
		return
	}
	c.JSON(http.StatusOK, dto.ListSubscriptionsResponse{Subscriptions: dto.ToSubscriptionResponses(subs)})
}

// getSubscription godoc
// @Summary Subscription details with recent activity
// @Tags subscriptions
// @Produce json
// @Param subscriptionID path string true "Subscription ID"
// @Success 200 {object} dto.SubscriptionDetailsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID} [get]
func (h *subscriptionHandler) getSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	details, err := h.subscriptionService.GetSubscriptionDetails(c.Request.Context(), customer, c.Param("subscriptionID"))
	if err != nil {
		respondError(c, logger, err, "Failed to load subscription")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubscriptionDetailsResponse(details))
}

// createSubscription godoc
// @Summary Start a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body dto.CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions [post]
func (h *subscriptionHandler) createSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	result, err := h.subscriptionService.CreateSubscription(c.Request.Context(), customer, req.ToInput())
	if err != nil {
		respondActionError(c, logger, err, domain.ActionCreate)
		return
	}
	h.respondAction(c, http.StatusCreated, result)
}

// updateSubscription godoc
// @Summary Rename a subscription or change its billing cycle
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscriptionID path string true "Subscription ID"
// @Param subscription body dto.UpdateSubscriptionRequest true "Fields to change"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID} [patch]
func (h *subscriptionHandler) updateSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	result, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), customer, c.Param("subscriptionID"), req.ToInput())
	if err != nil {
		respondActionError(c, logger, err, domain.ActionUpdate)
		return
	}
	h.respondAction(c, http.StatusOK, result)
}

// deleteSubscription godoc
// @Summary Delete a subscription
// @Tags subscriptions
// @Produce json
// @Param subscriptionID path string true "Subscription ID"
// @Success 200 {object} dto.ActionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID} [delete]
func (h *subscriptionHandler) deleteSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	result, err := h.subscriptionService.DeleteSubscription(c.Request.Context(), customer, c.Param("subscriptionID"))
	if err != nil {
		respondActionError(c, logger, err, domain.ActionDelete)
		return
	}
	h.respondAction(c, http.StatusOK, result)
}

type lifecycleFunc func(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error)

// lifecycleCall picks the service method for action.
func (h *subscriptionHandler) lifecycleCall(action domain.SubscriptionAction) lifecycleFunc {
	switch action {
	case domain.ActionPause:
		return h.subscriptionService.PauseSubscription
	case domain.ActionResume:
		return h.subscriptionService.ResumeSubscription
	case domain.ActionCancel:
		return h.subscriptionService.CancelSubscription
	case domain.ActionReactivate:
		return h.subscriptionService.ReactivateSubscription
	default:
		return nil
	}
}

// lifecycle godoc
// @Summary Pause, resume, cancel or reactivate a subscription
// @Description The store API decides whether the transition is allowed
// @Tags subscriptions
// @Produce json
// @Param subscriptionID path string true "Subscription ID"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID}/pause [post]
// @Router /subscriptions/{subscriptionID}/resume [post]
// @Router /subscriptions/{subscriptionID}/cancel [post]
// @Router /subscriptions/{subscriptionID}/reactivate [post]
func (h *subscriptionHandler) lifecycle(action domain.SubscriptionAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("action", string(action)))
		customer, ok := customerID(c, logger)
		if !ok {
			return
		}

		result, err := h.lifecycleCall(action)(c.Request.Context(), customer, c.Param("subscriptionID"))
		if err != nil {
			respondActionError(c, logger, err, action)
			return
		}
		h.respondAction(c, http.StatusOK, result)
	}
}

// setAutoRenew godoc
// @Summary Turn auto-renew on or off
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscriptionID path string true "Subscription ID"
// @Param body body dto.AutoRenewRequest true "Target state"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID}/auto-renew [put]
func (h *subscriptionHandler) setAutoRenew(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	var req dto.AutoRenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	result, err := h.subscriptionService.SetAutoRenew(c.Request.Context(), customer, c.Param("subscriptionID"), *req.Enabled)
	if err != nil {
		respondActionError(c, logger, err, domain.ActionAutoRenew)
		return
	}
	h.respondAction(c, http.StatusOK, result)
}

// addProduct godoc
// @Summary Add a product to a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscriptionID path string true "Subscription ID"
// @Param product body dto.AddProductRequest true "Product"
// @Success 200 {object} dto.ActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID}/products [post]
func (h *subscriptionHandler) addProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	var req dto.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	result, err := h.subscriptionService.AddProduct(c.Request.Context(), customer, c.Param("subscriptionID"), req.ProductID, req.Quantity)
	if err != nil {
		respondActionError(c, logger, err, domain.ActionAddProduct)
		return
	}
	h.respondAction(c, http.StatusOK, result)
}

// removeProduct godoc
// @Summary Remove a product from a subscription
// @Tags subscriptions
// @Produce json
// @Param subscriptionID path string true "Subscription ID"
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ActionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID}/products/{productID} [delete]
func (h *subscriptionHandler) removeProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	result, err := h.subscriptionService.RemoveProduct(c.Request.Context(), customer, c.Param("subscriptionID"), c.Param("productID"))
	if err != nil {
		respondActionError(c, logger, err, domain.ActionRemoveProduct)
		return
	}
	h.respondAction(c, http.StatusOK, result)
}

// getConfirmation godoc
// @Summary Confirmation modal content for an action
// @Description The subscription name comes from the cached list; an unknown subscription is named generically
// @Tags subscriptions
// @Produce json
// @Param subscriptionID path string true "Subscription ID"
// @Param action path string true "Action"
// @Success 200 {object} dto.ConfirmationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{subscriptionID}/confirmations/{action} [get]
func (h *subscriptionHandler) getConfirmation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerID(c, logger)
	if !ok {
		return
	}

	action := domain.SubscriptionAction(c.Param("action"))
	if !action.IsValid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unknown action"})
		return
	}

	var name string
	subs, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), customer)
	if err != nil {
		logger.Warn("Could not load subscription name for confirmation", slog.String("error", err.Error()))
	}
	id := c.Param("subscriptionID")
	for _, s := range subs {
		if s.ID == id {
			name = s.Name
			break
		}
	}

	prompt, required := domain.PromptFor(action, name)
	c.JSON(http.StatusOK, dto.ToConfirmationResponse(action, prompt, required))
}

// respondAction writes a successful mutation and reports it to analytics.
func (h *subscriptionHandler) respondAction(c *gin.Context, status int, result *domain.ActionResult) {
	props := map[string]any{"action": string(result.Action)}
	if result.Subscription != nil {
		props["subscription_id"] = result.Subscription.ID
	} else if id := c.Param("subscriptionID"); id != "" {
		props["subscription_id"] = id
	}
	middleware.PosthogEvent(c, h.posthog, "subscription_action", props)

	c.JSON(status, dto.ToActionResponse(result))
}
