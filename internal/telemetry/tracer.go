// Package telemetry exports spans for gallery mutations over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set, and is a no-op otherwise.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv names the OTLP collector URL ("http://localhost:4318").
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// DefaultServiceName is reported when ServiceNameEnv is unset.
	DefaultServiceName = "photoshare"
)

// Tracer starts spans for UI operations.
type Tracer struct {
	provider *sdktrace.TracerProvider // nil when disabled
	tracer   oteltrace.Tracer
}

// Nop returns a tracer that records nothing.
func Nop() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(DefaultServiceName)}
}

// New builds an exporting tracer from the environment, or Nop when no
// endpoint is configured.
func New(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return Nop(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return FromProvider(provider), nil
}

// FromProvider wraps an existing SDK provider, e.g. one with an in-memory
// span recorder.
func FromProvider(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("photoshare/ui"),
	}
}

// Enabled reports whether spans leave the process.
func (t *Tracer) Enabled() bool {
	return t != nil && t.provider != nil
}

// Start opens a span. Attribute keys are namespaced under "photoshare.".
func (t *Tracer) Start(ctx context.Context, name string, attrs map[string]string) (context.Context, oteltrace.Span) {
	if t == nil || t.tracer == nil {
		return Nop().Start(ctx, name, attrs)
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kvs = append(kvs, attribute.String("photoshare."+k, v))
	}
	return t.tracer.Start(ctx, name, oteltrace.WithAttributes(kvs...))
}

// Shutdown flushes pending spans.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
