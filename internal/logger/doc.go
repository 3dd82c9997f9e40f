// Package logger provides structured logging for the transcriber service
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.New(&cfg, "yt-transcriber").WithComponent("downloader")
//	log.Info("download finished", logger.Fields("job_id", id))
package logger
