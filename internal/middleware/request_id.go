// Package middleware provides Gin middleware shared by all routes.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header carrying the request ID in both directions
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key holding the request ID
	RequestIDKey = "RequestID"
)

// RequestID adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if request ID already exists in header
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "" if none.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
