// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package logger is a log/slog handler that writes through zerolog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type config struct {
	// level is the minimum level written.
	level slog.Leveler
	// console switches from JSON lines to human readable output.
	console bool
}

type Option func(*config)

func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		c.level = level
	}
}

func WithConsole(console bool) Option {
	return func(c *config) {
		c.console = console
	}
}

type Handler struct {
	logger zerolog.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// New returns a slog logger backed by zerolog.
func New(w io.Writer, opts ...Option) *slog.Logger {
	return slog.New(NewHandler(w, opts...))
}

func NewHandler(w io.Writer, opts ...Option) *Handler {

	c := &config{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(c)
	}
	if c.console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}
	return &Handler{
		logger: zerolog.New(w).Level(zerolog.TraceLevel),
		level:  c.level,
	}
}

// ParseLevel accepts slog level names such as "debug" or "warn+2".
func ParseLevel(text string) (level slog.Level, err error) {
	err = level.UnmarshalText([]byte(text))
	return level, err
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {

	event := h.logger.WithLevel(zerologLevel(r.Level))
	if event == nil {
		return nil
	}
	if !r.Time.IsZero() {
		event = event.Time(zerolog.TimestampFieldName, r.Time)
	}
	for _, attr := range h.attrs {
		event = appendAttr(event, attr)
	}

	prefix := h.groupPrefix()
	r.Attrs(func(attr slog.Attr) bool {
		if prefix != "" {
			attr.Key = prefix + attr.Key
		}
		event = appendAttr(event, attr)
		return true
	})
	event.Msg(r.Message)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {

	clone := h.clone()
	prefix := h.groupPrefix()
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + attr.Key
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return clone
}

func (h *Handler) WithGroup(name string) slog.Handler {

	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *Handler) clone() *Handler {
	return &Handler{
		logger: h.logger,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func (h *Handler) groupPrefix() string {

	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func zerologLevel(level slog.Level) zerolog.Level {

	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func appendAttr(event *zerolog.Event, attr slog.Attr) *zerolog.Event {

	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return event
	}

	switch attr.Value.Kind() {
	case slog.KindString:
		return event.Str(attr.Key, attr.Value.String())
	case slog.KindInt64:
		return event.Int64(attr.Key, attr.Value.Int64())
	case slog.KindUint64:
		return event.Uint64(attr.Key, attr.Value.Uint64())
	case slog.KindFloat64:
		return event.Float64(attr.Key, attr.Value.Float64())
	case slog.KindBool:
		return event.Bool(attr.Key, attr.Value.Bool())
	case slog.KindDuration:
		return event.Dur(attr.Key, attr.Value.Duration())
	case slog.KindTime:
		return event.Time(attr.Key, attr.Value.Time())
	case slog.KindGroup:
		group := attr.Value.Group()
		if len(group) == 0 {
			return event
		}
		dict := zerolog.Dict()
		for _, member := range group {
			dict = appendAttr(dict, member)
		}
		if attr.Key == "" {
			for _, member := range group {
				event = appendAttr(event, member)
			}
			return event
		}
		return event.Dict(attr.Key, dict)
	default:
		if err, ok := attr.Value.Any().(error); ok {
			return event.AnErr(attr.Key, err)
		}
		return event.Interface(attr.Key, attr.Value.Any())
	}
}
