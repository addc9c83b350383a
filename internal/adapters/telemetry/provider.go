// Package telemetry wires OpenTelemetry tracing for refresh cycles.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans produced by this process.
const InstrumentationName = "go.trai.ch/attune"

// Provider owns the SDK tracer provider for the process.
type Provider struct {
	sdk *sdktrace.TracerProvider
}

// NewProvider creates a tracer provider with the given span processors
// installed and registers it globally.
func NewProvider(processors ...sdktrace.SpanProcessor) *Provider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	sdk := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(sdk)
	return &Provider{sdk: sdk}
}

// Tracer returns the tracer engine components should use.
func (p *Provider) Tracer() trace.Tracer {
	return p.sdk.Tracer(InstrumentationName)
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.sdk.Shutdown(ctx)
}
