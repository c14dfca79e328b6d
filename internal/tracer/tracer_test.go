// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package tracer

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMiddleware(t *testing.T) {

	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	provider := NewProvider("test", nil)
	provider.RegisterSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter))

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(Middleware(provider))
	app.Get("/markers/:id", func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Params("id"))
	})
	app.Get("/broken", func(*fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadGateway, "upstream")
	})

	tests := []struct {
		target     string
		wantName   string
		wantStatus int
		wantError  bool
	}{
		{target: "/markers/42", wantName: "GET /markers/:id", wantStatus: 200},
		{target: "/broken", wantName: "GET /broken", wantStatus: 502, wantError: true},
	}

	for _, tt := range tests {
		exporter.Reset()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.target, nil))
		if err != nil {
			t.Fatalf("%s: app.Test() error = %v", tt.target, err)
		}
		_ = resp.Body.Close()

		spans := exporter.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("%s: got %d spans, want 1", tt.target, len(spans))
		}
		span := spans[0]
		if span.Name != tt.wantName {
			t.Errorf("%s: span name = %q, want %q", tt.target, span.Name, tt.wantName)
		}
		if !hasAttr(span.Attributes, attribute.Int("http.response.status_code", tt.wantStatus)) {
			t.Errorf("%s: attributes %v lack status %d", tt.target, span.Attributes, tt.wantStatus)
		}
		if got := span.Status.Code == codes.Error; got != tt.wantError {
			t.Errorf("%s: error status = %v, want %v", tt.target, got, tt.wantError)
		}
	}
}

func TestNewProvider_resource(t *testing.T) {

	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	provider := NewProvider("maps", nil, attribute.String("env", "test"))
	provider.RegisterSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter))

	_, span := provider.Tracer(instrumentationName).Start(t.Context(), "render")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	attrs := spans[0].Resource.Attributes()
	if !hasAttr(attrs, attribute.String("service.name", "maps")) || !hasAttr(attrs, attribute.String("env", "test")) {
		t.Errorf("resource attributes = %v", attrs)
	}
}

func hasAttr(attrs []attribute.KeyValue, want attribute.KeyValue) bool {

	for _, attr := range attrs {
		if attr.Key == want.Key && attr.Value == want.Value {
			return true
		}
	}
	return false
}
