package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront/internal/apperrors"
	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/SscSPs/storefront/internal/dto"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor keeps the client-error status reported by the store API (403,
// 409, 422) and otherwise maps the sentinel. An upstream 401 means the
// service credentials were rejected and maps to 502.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch {
		case appErr.Code == http.StatusUnauthorized:
			return http.StatusBadGateway
		case appErr.Code >= 400 && appErr.Code < 500:
			return appErr.Code
		}
	}
	return apperrors.StatusOf(err)
}

// errorMessage exposes upstream messages for client errors only.
func errorMessage(err error, status int, fallback string) string {
	if status >= http.StatusInternalServerError {
		return fallback
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, dto.ErrorResponse{Error: errorMessage(err, status, fallback)})
}

// respondActionError adds the failure notice of action to the error body.
func respondActionError(c *gin.Context, logger *slog.Logger, err error, action domain.SubscriptionAction) {
	notice := dto.ToNoticeResponse(domain.ErrorNotice(action))
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(notice.Message, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn(notice.Message, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, dto.ErrorResponse{Error: errorMessage(err, status, notice.Message), Notice: &notice})
}

func badRequest(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.Warn(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg + ": " + err.Error()})
}

// customerID returns the authenticated customer, writing 401 when absent.
func customerID(c *gin.Context, logger *slog.Logger) (string, bool) {
	id, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		logger.Error("Customer ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return id, true
}
