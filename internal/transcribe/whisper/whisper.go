// Package whisper implements the local transcription backend on top of
// whisper.cpp. The model is loaded once at startup and shared by all
// requests; inference is not reentrant, so calls are serialized.
package whisper

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	whispercpp "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe"
)

// BackendName is the registered name for the local whisper.cpp backend.
const BackendName = "whispercpp"

// Transcriber runs whisper.cpp inference in-process.
type Transcriber struct {
	cfg   Config
	model whispercpp.Model
	dec   *pcmDecoder
	log   *logger.Logger

	// mu serializes inference: the shared model context is not safe for
	// concurrent Process calls.
	mu sync.Mutex
}

var _ transcribe.Backend = (*Transcriber)(nil)

// New loads the configured model and returns the backend. An invalid model
// size is corrected to the default rather than failing; a missing model
// file is a hard error.
func New(cfg Config, log *logger.Logger) (*Transcriber, error) {
	cfg.ApplyDefaults()
	log = log.WithComponent("whisper")

	if !IsValidModelSize(cfg.ModelSize) {
		log.Error("Invalid model size, falling back to default", map[string]interface{}{
			"model_size":  cfg.ModelSize,
			"valid_sizes": strings.Join(ValidModelSizes(), ", "),
			"fallback":    DefaultModelSize,
		})
		cfg.ModelSize = DefaultModelSize
	}

	modelPath := filepath.Join(cfg.ModelsDir, ModelFileName(cfg.ModelSize))
	log.Info("Loading whisper model", map[string]interface{}{
		"model_size": cfg.ModelSize,
		"path":       modelPath,
	})

	start := time.Now()
	model, err := whispercpp.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load whisper model %s: %w", modelPath, err)
	}

	log.Info("Whisper model loaded", map[string]interface{}{
		"model_size":   cfg.ModelSize,
		"multilingual": model.IsMultilingual(),
		"duration_ms":  time.Since(start).Milliseconds(),
	})

	return &Transcriber{
		cfg:   cfg,
		model: model,
		dec:   newPCMDecoder(cfg.FFmpegPath, log),
		log:   log,
	}, nil
}

// Name returns the backend name.
func (t *Transcriber) Name() string { return BackendName }

// Available reports whether the model is loaded.
func (t *Transcriber) Available(_ context.Context) bool {
	return t.model != nil
}

// Transcribe converts an audio file to text with the loaded model.
func (t *Transcriber) Transcribe(ctx context.Context, req transcribe.Request) (*transcribe.Result, error) {
	t.log.Info("Starting transcription", map[string]interface{}{
		"file":     req.AudioPath,
		"language": languageOrAuto(req.Language),
	})

	samples, err := t.dec.Decode(ctx, req.AudioPath)
	if err != nil {
		return nil, apperrors.Transcription(fmt.Sprintf("convert audio: %v", err)).WithCause(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, apperrors.Transcription("transcription canceled").WithCause(err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	wctx, err := t.model.NewContext()
	if err != nil {
		return nil, apperrors.Transcription(fmt.Sprintf("create whisper context: %v", err)).WithCause(err)
	}

	lang := languageOrAuto(req.Language)
	if err := wctx.SetLanguage(lang); err != nil {
		t.log.Warn("Failed to set language", map[string]interface{}{
			"language": lang,
			"error":    err.Error(),
		})
	}
	if t.cfg.Threads > 0 {
		wctx.SetThreads(t.cfg.Threads)
	}

	if err := wctx.Process(samples, nil, nil, nil); err != nil {
		return nil, apperrors.Transcription(fmt.Sprintf("whisper process: %v", err)).WithCause(err)
	}

	var text strings.Builder
	var segments []transcribe.Segment
	for {
		segment, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.Transcription(fmt.Sprintf("read segment: %v", err)).WithCause(err)
		}
		text.WriteString(segment.Text)
		segments = append(segments, transcribe.Segment{
			Start: segment.Start.Seconds(),
			End:   segment.End.Seconds(),
			Text:  strings.TrimSpace(segment.Text),
		})
	}

	result := strings.TrimSpace(text.String())
	t.log.Info("Transcription finished", map[string]interface{}{
		"file":     req.AudioPath,
		"segments": len(segments),
		"length":   len(result),
	})

	return &transcribe.Result{
		Text:     result,
		Language: wctx.DetectedLanguage(),
		Segments: segments,
	}, nil
}

// Close releases the loaded model.
func (t *Transcriber) Close() error {
	if t.model == nil {
		return nil
	}
	return t.model.Close()
}

func languageOrAuto(lang string) string {
	if lang == "" {
		return "auto"
	}
	return lang
}
