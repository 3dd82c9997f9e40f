// Package jobs runs the per-request transcription pipeline: normalize the
// URL, download the audio, transcribe it, and clean up the scratch file.
package jobs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillsenselab/yt-transcriber/internal/download"
	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/observability"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe"
	"github.com/skillsenselab/yt-transcriber/internal/youtube"
)

// fetcher abstracts the audio acquirer for testability.
type fetcher interface {
	TempDir() string
	Fetch(ctx context.Context, url, basePath string) (download.Artifact, error)
}

// Orchestrator owns the transcription pipeline. One Run call handles one
// video end to end; the scratch file is removed before Run returns no
// matter how the job ends.
type Orchestrator struct {
	dl      fetcher
	metrics *observability.Metrics
	log     *logger.Logger
}

// New creates an Orchestrator. metrics may be nil, in which case metric
// recording is skipped.
func New(dl *download.Downloader, metrics *observability.Metrics, log *logger.Logger) *Orchestrator {
	return newOrchestrator(dl, metrics, log)
}

func newOrchestrator(dl fetcher, metrics *observability.Metrics, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		dl:      dl,
		metrics: metrics,
		log:     log.WithComponent("jobs"),
	}
}

// Run executes one transcription job against the given backend. Each job
// gets a fresh UUID that doubles as the scratch file base name, so
// concurrent jobs never collide on disk.
func (o *Orchestrator) Run(ctx context.Context, req Request, backend transcribe.Backend) (*transcribe.Result, error) {
	jobID := uuid.New().String()
	backendName := backend.Name()

	log := o.log.WithFields(map[string]interface{}{
		logger.FieldJobID:   jobID,
		logger.FieldBackend: backendName,
	})

	ctx, span := observability.StartSpan(ctx, observability.SpanJob)
	defer span.End()
	span.SetAttributes(
		attribute.String(observability.AttrJobID, jobID),
		attribute.String(observability.AttrBackend, backendName),
	)

	log.Info("Job received", map[string]interface{}{
		logger.FieldStatus: string(StatusReceived),
		logger.FieldURL:    req.URL,
	})

	url := youtube.CanonicalWatchURL(req.URL)
	if url != req.URL {
		log.Info("Normalized video URL", map[string]interface{}{
			logger.FieldStatus: string(StatusNormalizing),
			logger.FieldURL:    url,
		})
	}
	span.SetAttributes(attribute.String(observability.AttrVideoURL, url))

	basePath := filepath.Join(o.dl.TempDir(), jobID)

	artifact, err := o.download(ctx, log, backendName, url, basePath)
	if err != nil {
		o.fail(ctx, span, log, StatusDownloading, err)
		return nil, err
	}
	defer o.cleanup(ctx, log, artifact.Path)

	result, err := o.transcribe(ctx, log, backendName, artifact.Path, req.Language, backend)
	if err != nil {
		o.fail(ctx, span, log, StatusTranscribing, err)
		return nil, err
	}

	span.SetAttributes(attribute.String(observability.AttrStatus, string(StatusCompleted)))
	log.Info("Job completed", map[string]interface{}{
		logger.FieldStatus: string(StatusCompleted),
		"characters":       len(result.Text),
	})
	return result, nil
}

func (o *Orchestrator) download(ctx context.Context, log *logger.Logger, backendName, url, basePath string) (download.Artifact, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanDownload)
	defer span.End()

	log.Info("Downloading audio", map[string]interface{}{
		logger.FieldStatus: string(StatusDownloading),
		logger.FieldURL:    url,
	})

	start := time.Now()
	artifact, err := o.dl.Fetch(ctx, url, basePath)
	o.recordStage(ctx, "download", backendName, time.Since(start))
	if err != nil {
		observability.SetSpanError(ctx, err)
		return download.Artifact{}, err
	}
	return artifact, nil
}

func (o *Orchestrator) transcribe(ctx context.Context, log *logger.Logger, backendName, audioPath, language string, backend transcribe.Backend) (*transcribe.Result, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanTranscribe)
	defer span.End()

	log.Info("Transcribing audio", map[string]interface{}{
		logger.FieldStatus: string(StatusTranscribing),
		"path":             audioPath,
	})

	start := time.Now()
	result, err := backend.Transcribe(ctx, transcribe.Request{
		AudioPath: audioPath,
		Language:  language,
	})
	o.recordStage(ctx, "transcribe", backendName, time.Since(start))
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	return result, nil
}

// cleanup removes the scratch artifact. Failures are logged, never
// returned: the job outcome is already decided by the time cleanup runs.
func (o *Orchestrator) cleanup(ctx context.Context, log *logger.Logger, path string) {
	_, span := observability.StartSpan(ctx, observability.SpanCleanup)
	defer span.End()

	err := os.Remove(path)
	switch {
	case err == nil:
		log.Info("Cleaned up scratch file", map[string]interface{}{
			logger.FieldStatus: string(StatusCleaningUp),
			"path":             path,
		})
	case os.IsNotExist(err):
		log.Debug("Scratch file already removed", map[string]interface{}{
			"path": path,
		})
	default:
		log.Warn("Failed to clean up scratch file", map[string]interface{}{
			"path":            path,
			logger.FieldError: err.Error(),
		})
	}
}

func (o *Orchestrator) fail(ctx context.Context, span trace.Span, log *logger.Logger, stage Status, err error) {
	span.RecordError(err)
	span.SetAttributes(attribute.String(observability.AttrStatus, string(StatusFailed)))
	if o.metrics != nil {
		o.metrics.RecordError(ctx, string(apperrors.From(err).Code), "jobs")
	}
	log.Error("Job failed", map[string]interface{}{
		logger.FieldStatus: string(StatusFailed),
		logger.FieldStage:  string(stage),
		logger.FieldError:  err.Error(),
	})
}

func (o *Orchestrator) recordStage(ctx context.Context, stage, backendName string, d time.Duration) {
	if o.metrics != nil {
		o.metrics.RecordStage(ctx, stage, backendName, d)
	}
}
