// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "piemarker/server"

	headerClientID  = "X-Client-Id"
	localsClientID  = "clientID"
	unknownClientID = "unknown"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

type Metrics struct {
	RequestsTotal    metric.Int64Counter
	ErrorResponses   metric.Int64Counter
	PanicsTotal      metric.Int64Counter
	RequestsInFlight metric.Int64UpDownCounter
	RequestDuration  metric.Float64Histogram
	RendersTotal     metric.Int64Counter
	RenderDuration   metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (m *Metrics, err error) {

	m = &Metrics{}
	if m.RequestsTotal, err = meter.Int64Counter("piemarker.requests",
		metric.WithDescription("Incoming HTTP requests to all endpoints")); err != nil {
		return nil, err
	}
	if m.ErrorResponses, err = meter.Int64Counter("piemarker.error_responses",
		metric.WithDescription("Error responses sent to clients")); err != nil {
		return nil, err
	}
	if m.PanicsTotal, err = meter.Int64Counter("piemarker.panics",
		metric.WithDescription("Number of panics caught")); err != nil {
		return nil, err
	}
	if m.RequestsInFlight, err = meter.Int64UpDownCounter("piemarker.requests_in_flight",
		metric.WithDescription("Current number of HTTP requests being processed")); err != nil {
		return nil, err
	}
	if m.RequestDuration, err = meter.Float64Histogram("piemarker.request_duration",
		metric.WithDescription("Full HTTP request duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...)); err != nil {
		return nil, err
	}
	if m.RendersTotal, err = meter.Int64Counter("piemarker.renders",
		metric.WithDescription("Icon renders, by reuse of the drawing surface")); err != nil {
		return nil, err
	}
	if m.RenderDuration, err = meter.Float64Histogram("piemarker.render_duration",
		metric.WithDescription("Time spent rendering icon markup"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...)); err != nil {
		return nil, err
	}
	return m, nil
}

func clientID(ctx *fiber.Ctx) string {

	if id, ok := ctx.Locals(localsClientID).(string); ok {
		return id
	}
	return unknownClientID
}

func pathAttributes(ctx *fiber.Ctx) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("path", ctx.Route().Path),
		attribute.String("client_id", clientID(ctx)),
	}
}

func (srv *Server) clientIDMiddleware(ctx *fiber.Ctx) error {

	id := ctx.Get(headerClientID)
	if id == "" {
		id = unknownClientID
	}
	ctx.Locals(localsClientID, id)
	return ctx.Next()
}

func (srv *Server) inFlightMiddleware(ctx *fiber.Ctx) error {

	attrs := metric.WithAttributes(attribute.String("client_id", clientID(ctx)))
	srv.metrics.RequestsInFlight.Add(ctx.UserContext(), 1, attrs)
	defer srv.metrics.RequestsInFlight.Add(ctx.UserContext(), -1, attrs)
	return ctx.Next()
}

func (srv *Server) requestDurationMiddleware(ctx *fiber.Ctx) (err error) {

	start := time.Now()
	err = ctx.Next()

	attrs := append(pathAttributes(ctx), attribute.String("method", ctx.Method()))
	srv.metrics.RequestsTotal.Add(ctx.UserContext(), 1, metric.WithAttributes(attrs...))
	srv.metrics.RequestDuration.Record(ctx.UserContext(), time.Since(start).Seconds(), metric.WithAttributes(attrs...))
	return err
}

func (srv *Server) countErrorResponse(ctx *fiber.Ctx, status int) {
	srv.metrics.ErrorResponses.Add(ctx.UserContext(), 1, metric.WithAttributes(
		attribute.String("code", strconv.Itoa(status)),
		attribute.String("client_id", clientID(ctx)),
	))
}
