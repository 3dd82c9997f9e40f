package httpapi

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
	"github.com/skillsenselab/yt-transcriber/internal/jobs"
	"github.com/skillsenselab/yt-transcriber/internal/observability"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe"
	"github.com/skillsenselab/yt-transcriber/internal/validation"
)

// TranscriptionRequest is the body of a transcribe call.
type TranscriptionRequest struct {
	YoutubeURL string `json:"youtube_url" validate:"required"`
	// Language is an optional ISO 639-1 hint. Empty means auto-detect.
	Language string `json:"language" validate:"omitempty,max=16"`
}

// TranscriptionData is the success payload of a transcribe call.
type TranscriptionData struct {
	Transcription string `json:"transcription"`
}

// jobRunner runs one transcription job through the pipeline.
type jobRunner interface {
	Run(ctx context.Context, req jobs.Request, backend transcribe.Backend) (*transcribe.Result, error)
}

// Handler serves the transcription endpoints.
type Handler struct {
	runner  jobRunner
	metrics *observability.Metrics
}

// NewHandler creates a Handler. metrics may be nil, in which case metric
// recording is skipped.
func NewHandler(runner *jobs.Orchestrator, metrics *observability.Metrics) *Handler {
	return newHandler(runner, metrics)
}

func newHandler(runner jobRunner, metrics *observability.Metrics) *Handler {
	return &Handler{runner: runner, metrics: metrics}
}

// Transcribe returns the handler for a transcription endpoint bound to the
// given backend. The same handler logic serves both the local and the
// remote route; only the backend differs.
func (h *Handler) Transcribe(backend transcribe.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isJSONRequest(c) {
			RespondWithError(c, apperrors.UnsupportedMedia("Content-Type must be application/json"))
			return
		}

		var req TranscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondWithError(c, apperrors.Validation("Invalid JSON body"))
			return
		}

		if err := validation.Validate(&req); err != nil {
			if req.YoutubeURL == "" {
				RespondWithError(c, apperrors.Validation("Missing youtube_url"))
				return
			}
			RespondWithError(c, err)
			return
		}

		oc := observability.NewOperationContext(
			c.FullPath(), backend.Name(), c.GetString("request_id"), h.metrics,
		)
		ctx, span := oc.StartSpanForOperation(c.Request.Context(), observability.SpanHTTPRequest)

		result, err := h.runner.Run(ctx, jobs.Request{
			URL:      req.YoutubeURL,
			Language: req.Language,
		}, backend)
		if err != nil {
			oc.EndOperation(ctx, span, string(jobs.StatusFailed), err)
			RespondWithError(c, err)
			return
		}
		oc.EndOperation(ctx, span, string(jobs.StatusCompleted), nil)

		RespondOK(c, "Transcription completed", TranscriptionData{
			Transcription: result.Text,
		})
	}
}

// isJSONRequest reports whether the request declares a JSON body. Types
// with a +json suffix (e.g. application/vnd.api+json) count as JSON.
func isJSONRequest(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}
