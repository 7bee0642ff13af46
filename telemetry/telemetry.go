// Package telemetry wires OpenTelemetry tracing and metrics for Fina using
// the stdout exporters. It exposes a small Telemetry handle with the
// instruments the server records: request duration and LLM token usage.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/fina-ai/fina/model"
)

// Telemetry bundles the tracer and metric instruments used by the server.
type Telemetry struct {
	Tracer trace.Tracer

	requestDuration  metric.Float64Histogram
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
}

// Init configures global trace and meter providers with stdout exporters and
// returns a Telemetry handle plus a cleanup function flushing both providers.
func Init(ctx context.Context, service, version string) (*Telemetry, func(), error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(service),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	traceExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(10*time.Second)),
		),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	meter := mp.Meter(service)
	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in milliseconds"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}
	promptTokens, err := meter.Int64Counter(
		"llm.usage.prompt_tokens",
		metric.WithDescription("Prompt tokens consumed by completion calls"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prompt token counter: %w", err)
	}
	completionTokens, err := meter.Int64Counter(
		"llm.usage.completion_tokens",
		metric.WithDescription("Completion tokens produced by completion calls"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create completion token counter: %w", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			otel.Handle(err)
		}
		if err := mp.Shutdown(ctx); err != nil {
			otel.Handle(err)
		}
	}

	return &Telemetry{
		Tracer:           tp.Tracer(service),
		requestDuration:  requestDuration,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
	}, cleanup, nil
}

// RecordRequest records a served request's duration and route.
func (t *Telemetry) RecordRequest(ctx context.Context, route string, dur time.Duration) {
	if t == nil {
		return
	}
	t.requestDuration.Record(ctx, float64(dur.Milliseconds()),
		metric.WithAttributes(attribute.String("http.route", route)))
}

// RecordTokenUsage records token usage reported by a completion call.
func (t *Telemetry) RecordTokenUsage(ctx context.Context, usage *model.TokenUsage) {
	if t == nil || usage == nil {
		return
	}
	t.promptTokens.Add(ctx, int64(usage.PromptTokens))
	t.completionTokens.Add(ctx, int64(usage.CompletionTokens))
}

// StartSpan starts a span named name, tolerating a nil receiver.
func (t *Telemetry) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if t == nil {
		return noop.NewTracerProvider().Tracer("").Start(ctx, name)
	}
	return t.Tracer.Start(ctx, name)
}
