package observability

import (
	"context"
	stderrors "errors"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config configures telemetry export for the service.
type Config struct {
	// Enabled turns OTLP export on. When false, spans and metrics are
	// still recorded against the global no-op providers.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// ServiceName identifies the service in exported telemetry.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP export (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults applies default values to telemetry configuration.
func (c *Config) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = "yt-transcriber"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "1.0.0"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}

// Telemetry bundles the tracer and meter providers with the service's
// metric instruments.
type Telemetry struct {
	Metrics *Metrics

	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

// Init initializes tracing and metrics export. When cfg.Enabled is false
// no exporters are created and the returned instruments bind to the global
// no-op providers, so callers record unconditionally.
func Init(ctx context.Context, cfg Config) (*Telemetry, error) {
	cfg.ApplyDefaults()

	tel := &Telemetry{}

	if cfg.Enabled {
		tp, err := InitTracer(ctx, TracerConfig{
			ServiceName:    cfg.ServiceName,
			ServiceVersion: cfg.ServiceVersion,
			Environment:    cfg.Environment,
			Endpoint:       cfg.Endpoint,
			Insecure:       cfg.Insecure,
			SampleRate:     cfg.SampleRate,
		})
		if err != nil {
			return nil, err
		}
		tel.tracerProvider = tp

		mp, err := InitMeter(ctx, MeterConfig{
			ServiceName:    cfg.ServiceName,
			ServiceVersion: cfg.ServiceVersion,
			Environment:    cfg.Environment,
			Endpoint:       cfg.Endpoint,
			Insecure:       cfg.Insecure,
			Interval:       cfg.Interval,
		})
		if err != nil {
			_ = tp.Shutdown(ctx)
			return nil, err
		}
		tel.meterProvider = mp
	}

	metrics, err := NewMetrics(Meter(cfg.ServiceName))
	if err != nil {
		return nil, err
	}
	tel.Metrics = metrics

	return tel, nil
}

// Shutdown flushes and stops the telemetry providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.meterProvider != nil {
		if err := t.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if t.tracerProvider != nil {
		if err := t.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
