// Package openai transcribes audio through the hosted OpenAI Whisper API.
package openai

import (
	"context"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe"
)

// BackendName identifies the hosted backend in logs and metrics.
const BackendName = "openai"

// Transcriber sends audio files to the OpenAI transcription endpoint.
type Transcriber struct {
	cfg    Config
	client *goopenai.Client
	log    *logger.Logger
}

var _ transcribe.Backend = (*Transcriber)(nil)

// New builds a hosted backend. A missing API key is not a construction
// error: the backend stays mounted and rejects individual requests, so
// the local endpoint keeps working on a machine without credentials.
func New(cfg Config, log *logger.Logger) *Transcriber {
	cfg.ApplyDefaults()

	t := &Transcriber{
		cfg: cfg,
		log: log.WithComponent("transcribe.openai"),
	}
	if cfg.APIKey != "" {
		clientCfg := goopenai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		t.client = goopenai.NewClientWithConfig(clientCfg)
	}
	return t
}

// Name implements transcribe.Backend.
func (t *Transcriber) Name() string { return BackendName }

// Available reports whether the backend holds a credential. It does not
// probe the remote API.
func (t *Transcriber) Available(ctx context.Context) bool {
	return t.client != nil
}

// Transcribe implements transcribe.Backend.
func (t *Transcriber) Transcribe(ctx context.Context, req transcribe.Request) (*transcribe.Result, error) {
	if t.client == nil {
		return nil, apperrors.NotConfigured("OpenAI API key not configured")
	}

	t.log.Debug("Sending audio to OpenAI", map[string]interface{}{
		"model": t.cfg.Model,
		"path":  req.AudioPath,
	})

	resp, err := t.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    t.cfg.Model,
		FilePath: req.AudioPath,
		Language: req.Language,
	})
	if err != nil {
		return nil, apperrors.Transcription(fmt.Sprintf("OpenAI Whisper API error: %v", err)).WithCause(err)
	}

	return &transcribe.Result{
		Text:     resp.Text,
		Language: resp.Language,
	}, nil
}
