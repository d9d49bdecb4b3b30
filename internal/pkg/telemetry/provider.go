// Package telemetry sets up OpenTelemetry tracing for the server
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

// Shutdown flushes pending spans
type Shutdown func(context.Context) error

// Config configures the tracer provider
type Config struct {
	ServiceName string
	// Endpoint is the OTLP/HTTP collector URL. Tracing is off when empty.
	Endpoint string
}

// Setup registers a global tracer provider exporting to cfg.Endpoint. With
// no endpoint it registers nothing and returns a no-op shutdown, leaving the
// orchestrator spans on the default no-op provider.
func Setup(ctx context.Context, cfg *Config) (Shutdown, error) {
	noop := func(context.Context) error { return nil }

	if cfg == nil || cfg.Endpoint == "" {
		return noop, nil
	}
	if cfg.ServiceName == "" {
		return noop, errors.InvalidArgument("service name is required")
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop, errors.Wrap(err, "failed to create trace exporter")
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return noop, errors.Wrap(err, "failed to build trace resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
