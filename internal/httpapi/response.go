package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
)

// RespondOK sends a 200 with the success envelope.
func RespondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, apperrors.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithError derives the HTTP status and failure envelope from err.
// Non-AppError values are wrapped as internal errors so callers never leak
// raw error text they did not choose to expose.
func RespondWithError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.HTTPStatus, appErr.ToResponse())
}
