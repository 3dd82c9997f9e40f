package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillsenselab/yt-transcriber/internal/logger"
)

// HeaderRequestID is the request/response header carrying the request ID.
const HeaderRequestID = "X-Request-Id"

// RequestID injects a unique request ID into every request and response.
// The ID is also stored in the request context so downstream loggers pick
// it up via logger.WithContext.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Request.Header.Set(HeaderRequestID, id)
		c.Header(HeaderRequestID, id)

		ctx := logger.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
