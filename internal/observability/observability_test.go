package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("yt-transcriber")

	if cfg.ServiceName != "yt-transcriber" {
		t.Errorf("expected ServiceName 'yt-transcriber', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("yt-transcriber")

	if cfg.ServiceName != "yt-transcriber" {
		t.Errorf("expected ServiceName 'yt-transcriber', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.ServiceName != "yt-transcriber" {
		t.Errorf("expected ServiceName 'yt-transcriber', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
	if cfg.Enabled {
		t.Error("expected Enabled to default to false")
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordRequestStart(ctx)
	metrics.RecordRequestEnd(ctx, "/api/v1/transcribe", "whispercpp", "ok", 100*time.Millisecond)
	metrics.RecordStage(ctx, "download", "whispercpp", 50*time.Millisecond)
	metrics.RecordError(ctx, "download_failed", "downloader")
}

func TestInitDisabled(t *testing.T) {
	tel, err := Init(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tel.Metrics == nil {
		t.Fatal("expected instruments even when export is disabled")
	}

	// Recording against no-op providers must not panic.
	ctx := context.Background()
	tel.Metrics.RecordRequestStart(ctx)
	tel.Metrics.RecordRequestEnd(ctx, "/api/v2/transcribe", "openai", "error", time.Second)

	if err := tel.Shutdown(ctx); err != nil {
		t.Errorf("shutdown of disabled telemetry failed: %v", err)
	}
}

func TestNewOperationContext(t *testing.T) {
	oc := NewOperationContext("/api/v1/transcribe", "whispercpp", "req-1", nil)

	if oc.Endpoint != "/api/v1/transcribe" {
		t.Errorf("expected Endpoint '/api/v1/transcribe', got %s", oc.Endpoint)
	}
	if oc.Backend != "whispercpp" {
		t.Errorf("expected Backend 'whispercpp', got %s", oc.Backend)
	}
	if oc.RequestID != "req-1" {
		t.Errorf("expected RequestID 'req-1', got %s", oc.RequestID)
	}
	if oc.StartTime.IsZero() {
		t.Error("expected StartTime to be set")
	}
}

func TestOperationContextFromContext(t *testing.T) {
	oc := NewOperationContext("/api/v1/transcribe", "whispercpp", "req-1", nil)
	ctx := WithOperationContext(context.Background(), oc)

	retrieved := OperationContextFromContext(ctx)
	if retrieved == nil {
		t.Fatal("expected operation context from context")
	}
	if retrieved.Endpoint != oc.Endpoint {
		t.Errorf("expected Endpoint %s, got %s", oc.Endpoint, retrieved.Endpoint)
	}
}

func TestOperationContextFromContext_NotSet(t *testing.T) {
	retrieved := OperationContextFromContext(context.Background())
	if retrieved != nil {
		t.Error("expected nil when operation context not set")
	}
}

func TestOperationContext_Duration(t *testing.T) {
	oc := NewOperationContext("/api/v1/transcribe", "whispercpp", "req-1", nil)
	oc.StartTime = time.Now().Add(-50 * time.Millisecond)

	duration := oc.Duration()
	if duration < 45*time.Millisecond || duration > 200*time.Millisecond {
		t.Errorf("expected duration around 50ms, got %v", duration)
	}
}

func TestOperationContext_NilMetrics(t *testing.T) {
	oc := NewOperationContext("/api/v1/transcribe", "whispercpp", "req-1", nil)
	ctx := context.Background()

	ctx, span := oc.StartSpanForOperation(ctx, SpanHTTPRequest)
	oc.EndOperation(ctx, span, "ok", nil)
}

func TestOperationContextWithMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, _ := NewMetrics(meter)

	oc := NewOperationContext("/api/v2/transcribe", "openai", "req-1", metrics)
	ctx := context.Background()

	ctx, span := oc.StartSpanForOperation(ctx, SpanHTTPRequest)
	oc.EndOperation(ctx, span, "ok", nil)
}

func TestOperationContextEndWithError(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, _ := NewMetrics(meter)

	oc := NewOperationContext("/api/v1/transcribe", "whispercpp", "req-1", metrics)
	ctx := context.Background()

	ctx, span := oc.StartSpanForOperation(ctx, SpanHTTPRequest)
	oc.EndOperation(ctx, span, "error", fmt.Errorf("download failed"))
}

func TestNewServiceHealth(t *testing.T) {
	sh := NewServiceHealth("yt-transcriber", "1.0.0")

	if sh.Service != "yt-transcriber" {
		t.Errorf("expected Service 'yt-transcriber', got %s", sh.Service)
	}
	if sh.Version != "1.0.0" {
		t.Errorf("expected Version '1.0.0', got %s", sh.Version)
	}
	if sh.Status != HealthStatusUp {
		t.Errorf("expected Status 'up', got %s", sh.Status)
	}
}

func TestServiceHealth_AddComponent(t *testing.T) {
	sh := NewServiceHealth("yt-transcriber", "1.0.0")

	sh.AddComponent(Health{Name: "whispercpp", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("expected status 'up' after healthy component, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "openai", Status: HealthStatusDegraded, Message: "backend not available"})
	if sh.Status != HealthStatusDegraded {
		t.Errorf("expected status 'degraded', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "yt-dlp", Status: HealthStatusDown, Message: "binary not found"})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected status 'down', got %s", sh.Status)
	}

	if len(sh.Components) != 3 {
		t.Errorf("expected 3 components, got %d", len(sh.Components))
	}
}

func TestServiceHealth_DegradedDoesNotOverrideDown(t *testing.T) {
	sh := NewServiceHealth("yt-transcriber", "1.0.0")
	sh.AddComponent(Health{Name: "a", Status: HealthStatusDown})
	sh.AddComponent(Health{Name: "b", Status: HealthStatusDegraded})

	if sh.Status != HealthStatusDown {
		t.Errorf("expected 'down' not overridden by 'degraded', got %s", sh.Status)
	}
}

func TestBackendHealth(t *testing.T) {
	h := BackendHealth("whispercpp", true)
	if h.Status != HealthStatusUp {
		t.Errorf("expected 'up' for available backend, got %s", h.Status)
	}

	h = BackendHealth("openai", false)
	if h.Status != HealthStatusDegraded {
		t.Errorf("expected 'degraded' for unavailable backend, got %s", h.Status)
	}
	if h.Message == "" {
		t.Error("expected message for unavailable backend")
	}
}

func TestTracer(t *testing.T) {
	tracer := Tracer("test-tracer")
	if tracer == nil {
		t.Fatal("expected non-nil tracer")
	}
}

func TestMeter(t *testing.T) {
	meter := Meter("test-meter")
	if meter == nil {
		t.Fatal("expected non-nil meter")
	}
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()
	ctx, span := StartSpan(ctx, SpanJob)
	defer span.End()

	if span == nil {
		t.Fatal("expected non-nil span")
	}
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
}

func TestSpanFromContext(t *testing.T) {
	ctx := context.Background()
	span := SpanFromContext(ctx)
	if span == nil {
		t.Fatal("expected non-nil span (noop)")
	}

	// With a real span
	ctx, s := StartSpan(ctx, "test")
	defer s.End()
	got := SpanFromContext(ctx)
	if got == nil {
		t.Fatal("expected non-nil span from context")
	}
}

func TestSetSpanAttribute(t *testing.T) {
	// Use SDK tracer so span.IsRecording() returns true
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), "test-attrs")
	defer span.End()

	// All supported types - should not panic
	SetSpanAttribute(ctx, "string-key", "value")
	SetSpanAttribute(ctx, "int-key", 42)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "string-slice-key", []string{"a", "b"})

	// Unsupported type - should not panic, just ignored
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	ctx := context.Background()
	SetSpanAttribute(ctx, "key", "value")
}

func TestSetSpanError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), "test-error")
	defer span.End()

	SetSpanError(ctx, fmt.Errorf("test error"))
}

func TestSetSpanErrorNoSpan(t *testing.T) {
	ctx := context.Background()
	SetSpanError(ctx, fmt.Errorf("no span error"))
}

func TestSpanNameConstants(t *testing.T) {
	if SpanHTTPRequest != "http.request" {
		t.Errorf("expected 'http.request', got %q", SpanHTTPRequest)
	}
	if SpanJob != "transcribe.job" {
		t.Errorf("expected 'transcribe.job', got %q", SpanJob)
	}
	if SpanDownload != "job.download" {
		t.Errorf("expected 'job.download', got %q", SpanDownload)
	}
}

func TestAttributeKeyConstants(t *testing.T) {
	if AttrJobID != "job.id" {
		t.Errorf("expected 'job.id', got %q", AttrJobID)
	}
	if AttrBackend != "transcribe.backend" {
		t.Errorf("expected 'transcribe.backend', got %q", AttrBackend)
	}
	if AttrRequestID != "request.id" {
		t.Errorf("expected 'request.id', got %q", AttrRequestID)
	}
}
