// Package otel wires OpenTelemetry tracing for the commands.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Environment variables that control tracing.
const (
	EnvEndpoint = "APARTMENT_LISTINGS_OTEL_ENDPOINT"
	EnvEnabled  = "APARTMENT_LISTINGS_OTEL_ENABLED"
	// EnvSampleRatio sets the fraction of traces kept, between 0 and 1.
	EnvSampleRatio = "APARTMENT_LISTINGS_OTEL_SAMPLE_RATIO"
)

// TracerName is the instrumentation scope used by the web handlers.
const TracerName = "github.com/gt-examples/apartment-listings"

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when the endpoint is empty or tracing is explicitly
// disabled, Setup returns a no-op shutdown function and the global provider
// stays the no-op default, so spans started by handlers cost nothing.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(os.Getenv(EnvEnabled), "false") {
		return noop, nil
	}

	endpoint := os.Getenv(EnvEndpoint)
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(os.Getenv(EnvSampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the tracer used for request spans.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

func sampler(ratio string) sdktrace.Sampler {
	ratio = strings.TrimSpace(ratio)
	if ratio == "" {
		return sdktrace.AlwaysSample()
	}
	value, err := parseRatio(ratio)
	if err != nil {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(value))
}
