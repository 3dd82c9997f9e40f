// Package config loads and validates the service configuration.
//
// Configuration is layered: an optional YAML file supplies the base, an
// optional .env file fills in environment variables, and real environment
// variables override both. The flat variable names (HOST, PORT,
// TEMP_AUDIO_DIR, OPENAI_API_KEY, ...) are bound explicitly so existing
// deployment scripts keep working unchanged.
//
// Typical startup:
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    ...
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    ...
//	}
package config
