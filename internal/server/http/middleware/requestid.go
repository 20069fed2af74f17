package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request correlation identifier.
	RequestIDHeader = "X-Request-Id"
	// RequestIDContextKey is a gin context key for the request identifier.
	RequestIDContextKey = "requestID"
)

// RequestID assigns each request a correlation identifier, reusing one
// supplied by the caller when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// CurrentRequestID extracts the request identifier from context.
func CurrentRequestID(c *gin.Context) string {
	val, ok := c.Get(RequestIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
