// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package server

import (
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Option func(srv *Server)

// PublicURL prefixes absolute links in QR codes, legends and the API document.
// Without it links are built from the request.
func PublicURL(url string) Option {
	return func(srv *Server) {
		srv.publicURL = strings.TrimSuffix(url, "/")
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(srv *Server) {
		if timeout > 0 {
			srv.shutdownTimeout = timeout
		}
	}
}

func LogRequests(enabled bool) Option {
	return func(srv *Server) {
		srv.logRequests = enabled
	}
}

func BodyLimit(limit int) Option {
	return func(srv *Server) {
		srv.config.BodyLimit = limit
	}
}

// WithTracerProvider replaces the global tracer provider for request spans.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(srv *Server) {
		srv.tracerProvider = provider
	}
}

// WithMeter replaces the global meter for server metrics.
func WithMeter(meter metric.Meter) Option {
	return func(srv *Server) {
		srv.meter = meter
	}
}
