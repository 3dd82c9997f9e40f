package config

import (
	"fmt"

	"github.com/skillsenselab/yt-transcriber/internal/download"
	"github.com/skillsenselab/yt-transcriber/internal/httpapi"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/observability"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe/openai"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe/whisper"
	"github.com/skillsenselab/yt-transcriber/internal/version"
)

// Config is the full service configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging   logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server    httpapi.Config       `yaml:"server" mapstructure:"server"`
	Download  download.Config      `yaml:"download" mapstructure:"download"`
	Whisper   whisper.Config       `yaml:"whisper" mapstructure:"whisper"`
	OpenAI    openai.Config        `yaml:"openai" mapstructure:"openai"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills unset fields across all sections and propagates the
// service identity into telemetry.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "yt-transcriber"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Version == "" {
		c.Version = version.GetVersionInfo().Version
	}

	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Download.ApplyDefaults()
	c.Whisper.ApplyDefaults()
	c.OpenAI.ApplyDefaults()

	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = c.Name
	}
	if c.Telemetry.ServiceVersion == "" {
		c.Telemetry.ServiceVersion = c.Version
	}
	if c.Telemetry.Environment == "" {
		c.Telemetry.Environment = c.Environment
	}
	c.Telemetry.ApplyDefaults()
}

// Validate checks the configuration for invalid values. Call after
// ApplyDefaults.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if err := c.Download.Validate(); err != nil {
		return fmt.Errorf("config.download: %w", err)
	}
	return nil
}
