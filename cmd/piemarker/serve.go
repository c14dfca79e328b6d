// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"go.opentelemetry.io/otel/attribute"

	"piemarker/internal/config"
	"piemarker/internal/logger"
	"piemarker/internal/server"
	"piemarker/internal/store"
	"piemarker/internal/tracer"
)

func serveCommand(args []string, _, stderr io.Writer) (err error) {

	fs := newFlagSet("serve", stderr)
	configPath := fs.String("config", "", "path to the YAML configuration file")
	envFile := fs.String("env", ".env", "dotenv file loaded before the configuration")
	logFormat := fs.String("log-format", "", "log output: json or console, overrides the configuration")
	if err = fs.Parse(args); err != nil {
		return err
	}

	var cfg *config.Config
	if cfg, err = config.Load(*configPath, *envFile); err != nil {
		return err
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}

	var level slog.Level
	if level, err = logger.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	log := logger.New(os.Stderr,
		logger.WithLevel(level),
		logger.WithConsole(cfg.Log.Format == config.FormatConsole),
	).With(slog.String("app", cfg.Telemetry.ServiceName))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.OTLPEndpoint != "" {
		var shutdownTracer func(context.Context) error
		if shutdownTracer, err = tracer.Init(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.Insecure, attributes(cfg.Telemetry.Attributes)...); err != nil {
			return err
		}
		defer func() {
			if shutdownErr := shutdownTracer(context.Background()); shutdownErr != nil {
				log.Warn("tracer shutdown failed", slog.Any("error", shutdownErr))
			}
		}()
		log.Info("tracing enabled", slog.String("endpoint", cfg.Telemetry.OTLPEndpoint))
	}

	var st store.Store
	if st, err = store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN); err != nil {
		return err
	}
	defer st.Close()

	var srv *server.Server
	if srv, err = server.New(log, st,
		server.PublicURL(cfg.Server.PublicURL),
		server.ShutdownTimeout(cfg.Server.ShutdownTimeout),
		server.LogRequests(cfg.Server.LogRequests),
	); err != nil {
		return err
	}
	if err = srv.Seed(ctx, cfg.Markers); err != nil {
		return err
	}

	errs := make(chan error, 1)
	go func() {
		if cfg.Server.Domain != "" {
			errs <- srv.ServeTLS(cfg.Server.Domain, cfg.Server.CertCache)
			return
		}
		errs <- srv.Serve(cfg.Server.Addr)
	}()

	select {
	case err = <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err = srv.Shutdown(); err != nil {
		return fmt.Errorf("%s: %w", "failed to shut down", err)
	}
	return nil
}

func attributes(values map[string]string) []attribute.KeyValue {

	attrs := make([]attribute.KeyValue, 0, len(values))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		attrs = append(attrs, attribute.String(key, values[key]))
	}
	return attrs
}
