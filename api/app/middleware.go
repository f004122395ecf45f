package app

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hbalmes/webtoapp-api/api/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the caller request id or generates a new one
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Set(logger.RequestIDKey, requestID)
		ctx.Header(requestIDHeader, requestID)
		ctx.Next()
	}
}
