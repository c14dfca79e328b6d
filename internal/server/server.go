// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package server exposes stored pie chart markers over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"piemarker/internal/model"
	"piemarker/internal/store"
	"piemarker/internal/tracer"
	"piemarker/internal/validate"
)

const (
	defaultShutdownTimeout = 30 * time.Second
	defaultBodyLimit       = 1 * 1024 * 1024
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
)

type Server struct {
	log   *slog.Logger
	store store.Store

	config  fiber.Config
	srvHTTP *fiber.App

	metrics        *Metrics
	meter          metric.Meter
	tracerProvider trace.TracerProvider

	publicURL       string
	shutdownTimeout time.Duration
	logRequests     bool

	renders  *renderCache
	docsJSON []byte
	docsYAML []byte
}

// New builds the HTTP application over st. Nothing listens until Serve.
func New(log *slog.Logger, st store.Store, options ...Option) (srv *Server, err error) {

	srv = &Server{
		log:             log,
		store:           st,
		shutdownTimeout: defaultShutdownTimeout,
		renders:         newRenderCache(),
	}
	srv.config = fiber.Config{
		AppName:               "piemarker",
		DisableStartupMessage: true,
		BodyLimit:             defaultBodyLimit,
		ReadTimeout:           defaultReadTimeout,
		WriteTimeout:          defaultWriteTimeout,
		IdleTimeout:           defaultIdleTimeout,
		ErrorHandler:          srv.errorHandler,
	}
	for _, option := range options {
		option(srv)
	}

	if srv.meter == nil {
		srv.meter = otel.Meter(instrumentationName)
	}
	if srv.metrics, err = NewMetrics(srv.meter); err != nil {
		return nil, err
	}
	if srv.docsJSON, srv.docsYAML, err = apiDocs(srv.publicURL); err != nil {
		return nil, err
	}

	srv.srvHTTP = fiber.New(srv.config)
	srv.srvHTTP.Use(srv.recoverHandler)
	srv.srvHTTP.Use(srv.clientIDMiddleware)
	srv.srvHTTP.Use(srv.inFlightMiddleware)
	srv.srvHTTP.Use(srv.requestDurationMiddleware)
	srv.srvHTTP.Use(tracer.Middleware(srv.tracerProvider))
	if srv.logRequests {
		srv.srvHTTP.Use(srv.requestLogger)
	}
	srv.routes()
	return srv, nil
}

func (srv *Server) routes() {

	srv.srvHTTP.Get("/healthz", srv.serveHealth)
	srv.docsRoutes()

	api := srv.srvHTTP.Group("/api/markers")
	api.Get("/", srv.listMarkers)
	api.Post("/", srv.createMarker)
	api.Get("/:id", srv.getMarker)
	api.Delete("/:id", srv.deleteMarker)
	api.Put("/:id/data", srv.updateMarkerData)
	api.Get("/:id/icon.svg", srv.markerIcon)
	api.Get("/:id/placement", srv.markerPlacement)
	api.Get("/:id/legend.md", srv.markerLegend)
	api.Get("/:id/qr.png", srv.markerQR)
}

func (srv *Server) Fiber() *fiber.App {
	return srv.srvHTTP
}

// Seed stores definitions that are not stored yet. Existing ids are left untouched.
func (srv *Server) Seed(ctx context.Context, defs []model.Definition) (err error) {

	for i := range defs {
		def := defs[i]
		if err = validate.ValidateDefinition(&def); err != nil {
			return err
		}
		if err = srv.store.Create(ctx, &def); err != nil {
			if errors.Is(err, store.ErrExists) {
				continue
			}
			return fmt.Errorf("%s: %w", "failed to seed marker", err)
		}
		srv.log.Info("marker seeded", slog.String("id", def.ID), slog.String("title", def.Title))
	}
	return nil
}

// Serve listens on addr until Shutdown.
func (srv *Server) Serve(addr string) (err error) {

	srv.log.Info("http server started", slog.String("addr", addr))
	if err = srv.srvHTTP.Listen(addr); err != nil {
		return fmt.Errorf("%s: %w", "serve http on "+addr, err)
	}
	return nil
}

func (srv *Server) Shutdown() (err error) {

	if srv.srvHTTP != nil {
		if err = srv.srvHTTP.ShutdownWithTimeout(srv.shutdownTimeout); err != nil {
			return err
		}
	}
	return
}

func (srv *Server) serveHealth(ctx *fiber.Ctx) error {
	return sendResponse(ctx, fiber.StatusOK, fiber.Map{"status": "ok"})
}

func (srv *Server) recoverHandler(ctx *fiber.Ctx) (err error) {

	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}
			srv.metrics.PanicsTotal.Add(ctx.UserContext(), 1, metric.WithAttributes(pathAttributes(ctx)...))
			srv.log.Error("panic occurred",
				slog.Any("error", err),
				slog.String("method", ctx.Method()),
				slog.String("path", ctx.OriginalURL()),
				slog.String("stack", string(debug.Stack())),
			)
			err = srv.sendHTTPError(ctx, fiber.StatusInternalServerError, "internal server error")
		}
	}()
	return ctx.Next()
}

func (srv *Server) requestLogger(ctx *fiber.Ctx) (err error) {

	start := time.Now()
	err = ctx.Next()
	srv.log.Info("request",
		slog.String("method", ctx.Method()),
		slog.String("path", ctx.Path()),
		slog.Int("status", ctx.Response().StatusCode()),
		slog.Duration("duration", time.Since(start)),
		slog.String("clientID", clientID(ctx)),
	)
	return err
}
