package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

type healthHandler struct {
	checkers []portsrepo.HealthChecker
}

func newHealthHandler(checkers []portsrepo.HealthChecker) *healthHandler {
	return &healthHandler{checkers: checkers}
}

// health godoc
// @Summary Liveness and dependency check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "Unavailable"
// @Router /health [get]
func (h *healthHandler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	for _, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Health check failed", slog.String("error", err.Error()))
			c.String(http.StatusServiceUnavailable, "Unavailable")
			return
		}
	}
	c.String(http.StatusOK, "OK")
}
