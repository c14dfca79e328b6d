// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package tracer configures OpenTelemetry tracing and traces fiber requests.
package tracer

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// instrumentationName names the tracer and meter of this module.
const instrumentationName = "piemarker"

// NewProvider creates a tracer provider for serviceName. A nil exporter keeps
// spans in process only.
func NewProvider(serviceName string, exporter sdktrace.SpanExporter, attributes ...attribute.KeyValue) *sdktrace.TracerProvider {

	attrs := append([]attribute.KeyValue{attribute.String("service.name", serviceName)}, attributes...)
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attrs...)),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	return sdktrace.NewTracerProvider(opts...)
}

// Init installs a global tracer provider exporting over OTLP gRPC to endpoint.
// The returned function flushes and stops it.
func Init(ctx context.Context, serviceName, endpoint string, insecure bool, attributes ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {

	clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
	if insecure {
		clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
	}

	var exporter *otlptrace.Exporter
	if exporter, err = otlptrace.New(ctx, otlptracegrpc.NewClient(clientOpts...)); err != nil {
		return nil, fmt.Errorf("%s: %w", "failed to create otlp exporter", err)
	}

	provider := NewProvider(serviceName, exporter, attributes...)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	slog.Info("tracing enabled", slog.String("endpoint", endpoint), slog.String("service", serviceName))
	return provider.Shutdown, nil
}
