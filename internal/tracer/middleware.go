// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package tracer

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Middleware starts a server span per request, continuing a trace from the
// request headers. A nil provider uses the global one.
func Middleware(provider trace.TracerProvider) fiber.Handler {

	return func(ctx *fiber.Ctx) (err error) {

		tp := provider
		if tp == nil {
			tp = otel.GetTracerProvider()
		}
		carrier := propagation.HeaderCarrier(http.Header(ctx.GetReqHeaders()))
		parent := otel.GetTextMapPropagator().Extract(ctx.UserContext(), carrier)

		spanCtx, span := tp.Tracer(instrumentationName).Start(parent, ctx.Method(), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		ctx.SetUserContext(spanCtx)

		err = ctx.Next()

		status := ctx.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
		route := ctx.Route().Path
		span.SetName(ctx.Method() + " " + route)
		span.SetAttributes(
			attribute.String("http.request.method", ctx.Method()),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", status),
		)
		if err != nil {
			span.RecordError(err)
		}
		if err != nil || status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		return err
	}
}
