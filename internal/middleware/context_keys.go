package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// customerIDKey is the key used to store the authenticated customer's ID.
const customerIDKey = contextKey("customerID")

// GetCustomerIDFromContext retrieves the authenticated customer ID from the
// Gin context, falling back to the request context.
func GetCustomerIDFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(customerIDKey)); exists {
		customerID, ok := val.(string)
		return customerID, ok && customerID != ""
	}
	return GetCustomerIDFromCtx(c.Request.Context())
}

// GetCustomerIDFromCtx retrieves the customer ID from a standard context.
func GetCustomerIDFromCtx(ctx context.Context) (string, bool) {
	customerID, ok := ctx.Value(customerIDKey).(string)
	return customerID, ok && customerID != ""
}
