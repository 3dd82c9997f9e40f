package httpapi

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe"
)

// Routes bundles the handlers and backends served by the HTTP surface.
// Local serves /api/v1/transcribe, Remote serves /api/v2/transcribe; the
// two routes differ in backend selection only.
type Routes struct {
	Handler *Handler
	Local   transcribe.Backend
	Remote  transcribe.Backend
	Health  gin.HandlerFunc
}

// RegisterRoutes wires the service routes onto the engine, plus
// envelope-shaped fallbacks for unknown routes and disallowed methods.
func RegisterRoutes(engine *gin.Engine, r Routes) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		RespondWithError(c, apperrors.NotFound("Endpoint not found"))
	})
	engine.NoMethod(func(c *gin.Context) {
		RespondWithError(c, apperrors.MethodNotAllowed("Method not allowed"))
	})

	if r.Health != nil {
		engine.GET("/health", r.Health)
	}

	v1 := engine.Group("/api/v1")
	v1.POST("/transcribe", r.Handler.Transcribe(r.Local))

	v2 := engine.Group("/api/v2")
	v2.POST("/transcribe", r.Handler.Transcribe(r.Remote))
}
