package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/yt-transcriber/internal/observability"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe"
)

// HealthHandler reports service health including component statuses.
// Checkers cover infrastructure pieces (e.g. the downloader); backends are
// reported through their Available probe and only degrade the service,
// since the other backend keeps working.
func HealthHandler(service, version string, checkers []observability.HealthChecker, backends ...transcribe.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sh := observability.NewServiceHealth(service, version)
		for _, checker := range checkers {
			sh.AddComponent(checker.CheckHealth(ctx))
		}
		for _, backend := range backends {
			sh.AddComponent(observability.BackendHealth(backend.Name(), backend.Available(ctx)))
		}

		status := http.StatusOK
		if sh.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, sh)
	}
}
