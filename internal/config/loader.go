package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/skillsenselab/yt-transcriber/internal/logger"
)

// FileSystem abstracts file probing and .env loading (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (*RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (*RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// configSearchPaths are probed in order when no explicit config file is given.
var configSearchPaths = []string{
	"./config.yml",
	"./config/config.yml",
	"./cmd/yt-transcriber/config.yml",
}

// envSearchPaths are probed in order when no explicit .env file is given.
var envSearchPaths = []string{
	"./.env",
	"./config/.env",
	"./cmd/yt-transcriber/.env",
}

// envBindings maps the flat environment variables the service documents
// onto their nested config keys, so existing deployments configure the Go
// service exactly as before.
var envBindings = map[string]string{
	"server.host":           "HOST",
	"server.port":           "PORT",
	"logging.level":         "LOG_LEVEL",
	"logging.format":        "LOG_FORMAT",
	"download.temp_dir":     "TEMP_AUDIO_DIR",
	"download.binary_path":  "YTDLP_PATH",
	"download.cookies_file": "COOKIES_FILE",
	"whisper.model_size":    "WHISPER_MODEL_SIZE",
	"whisper.models_dir":    "WHISPER_MODELS_DIR",
	"whisper.threads":       "WHISPER_THREADS",
	"openai.api_key":        "OPENAI_API_KEY",
	"openai.model":          "OPENAI_WHISPER_MODEL",
	"openai.base_url":       "OPENAI_BASE_URL",
	"telemetry.enabled":     "OTEL_ENABLED",
	"telemetry.endpoint":    "OTEL_ENDPOINT",
}

// Resolver finds config and .env files when no explicit path is given.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths if provided, otherwise the first
// existing candidate from the search paths.
func (r *Resolver) ResolveFiles(opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.findFirst(configSearchPaths)
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.findFirst(envSearchPaths)
	}
	return resolved
}

func (r *Resolver) findFirst(paths []string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load populates cfg from the config file, the .env file, and the process
// environment, in ascending precedence. A missing config or .env file is
// fine; a config file that exists but cannot be parsed is an error.
func Load(cfg *Config, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(lc)

	v := viper.New()

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", files.ConfigFile, err)
		}
	}

	// Load .env before binding so its variables are visible to viper.
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			logger.Warn("Failed to load .env file", map[string]interface{}{
				"path":  files.EnvFile,
				"error": err.Error(),
			})
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}
