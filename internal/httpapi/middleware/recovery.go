package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// stack, and answers with the standard failure envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered", map[string]interface{}{
					"error":     fmt.Sprintf("%v", err),
					"stack":     string(debug.Stack()),
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, apperrors.Response{
					Success: false,
					Message: "Internal server error",
					Data:    nil,
				})
			}
		}()
		c.Next()
	}
}
