// Package observability provides OpenTelemetry tracing and metrics for the
// transcription service.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("yt-transcriber"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanJob)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("yt-transcriber"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("yt-transcriber"))
//	metrics.RecordRequestEnd(ctx, "/api/v1/transcribe", "whispercpp", "ok", duration)
//
// Both can be initialized together through Init, which returns no-op
// instruments when telemetry export is disabled:
//
//	tel, err := observability.Init(ctx, cfg)
//	defer tel.Shutdown(ctx)
package observability
