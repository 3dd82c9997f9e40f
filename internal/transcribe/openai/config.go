package openai

import "time"

// Config configures the hosted OpenAI transcription backend.
type Config struct {
	// APIKey is the OpenAI credential. Empty means the backend is mounted
	// but every request fails with a configuration error.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// Model is the hosted transcription model identifier.
	Model string `yaml:"model" mapstructure:"model"`
	// BaseURL overrides the API endpoint (for compatible gateways).
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds one transcription request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults applies default values to OpenAI backend configuration.
func (c *Config) ApplyDefaults() {
	if c.Model == "" {
		c.Model = "whisper-1"
	}
	if c.Timeout == 0 {
		c.Timeout = 300 * time.Second
	}
}
