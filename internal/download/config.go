package download

import (
	"time"

	"github.com/skillsenselab/yt-transcriber/internal/validation"
)

// Config configures the audio acquirer.
type Config struct {
	// BinaryPath is the yt-dlp executable (resolved via PATH by default).
	BinaryPath string `yaml:"binary_path" mapstructure:"binary_path"`
	// TempDir is the scratch directory for downloaded audio files.
	TempDir string `yaml:"temp_dir" mapstructure:"temp_dir"`
	// CookiesFile is the cookie jar passed to yt-dlp.
	CookiesFile string `yaml:"cookies_file" mapstructure:"cookies_file"`
	// UserAgent is sent with every download request.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	// SocketTimeout is the per-connection timeout in seconds.
	SocketTimeout int `yaml:"socket_timeout" mapstructure:"socket_timeout"`
	// Retries is how often yt-dlp retries a failing download.
	Retries int `yaml:"retries" mapstructure:"retries"`
	// Timeout is the wall-clock limit for one yt-dlp invocation.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ApplyDefaults applies default values to downloader configuration.
func (c *Config) ApplyDefaults() {
	if c.BinaryPath == "" {
		c.BinaryPath = "yt-dlp"
	}
	if c.TempDir == "" {
		c.TempDir = "temp_audio_files"
	}
	if c.CookiesFile == "" {
		c.CookiesFile = "cookies.txt"
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.SocketTimeout == 0 {
		c.SocketTimeout = 60
	}
	if c.Retries == 0 {
		c.Retries = 10
	}
	if c.Timeout == 0 {
		c.Timeout = 1200 * time.Second
	}
}

// Validate validates downloader configuration.
func (c *Config) Validate() error {
	v := validation.New().
		Required("binary_path", c.BinaryPath).
		Required("temp_dir", c.TempDir).
		Min("socket_timeout", c.SocketTimeout, 1).
		Min("retries", c.Retries, 0).
		Custom(c.Timeout > 0, "timeout", "must be positive")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
