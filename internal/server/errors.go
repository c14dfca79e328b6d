// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package server

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"piemarker/internal/content"
	"piemarker/internal/form"
	"piemarker/internal/pie"
	"piemarker/internal/pieicon"
	"piemarker/internal/store"
	"piemarker/internal/validate"
)

var (
	errInvalidZoom = errors.New("zoom must be an integer in [0, 24]")
	errInvalidView = errors.New("view width and height must be positive integers")
	errInvalidQR   = errors.New("qr size must be an integer in [64, 1024]")
)

type errorResponse struct {
	Error string `json:"error" yaml:"error"`
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrExists):
		return fiber.StatusConflict
	case errors.Is(err, validate.ErrInvalidDefinition),
		errors.Is(err, pie.ErrInvalidValue),
		errors.Is(err, pie.ErrZeroTotal),
		errors.Is(err, pie.ErrInvalidPrecision),
		errors.Is(err, pieicon.ErrInvalidSize),
		errors.Is(err, content.ErrDecode),
		errors.Is(err, errInvalidZoom),
		errors.Is(err, errInvalidView),
		errors.Is(err, errInvalidQR),
		errors.Is(err, form.ErrInvalidField):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (srv *Server) errorHandler(ctx *fiber.Ctx, err error) error {

	status := errorStatus(err)
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		srv.log.Error("request failed",
			slog.Any("error", err),
			slog.String("method", ctx.Method()),
			slog.String("path", ctx.OriginalURL()),
		)
		message = "internal server error"
	}
	return srv.sendHTTPError(ctx, status, message)
}

func (srv *Server) sendHTTPError(ctx *fiber.Ctx, statusCode int, message string) error {

	srv.countErrorResponse(ctx, statusCode)
	return sendResponse(ctx, statusCode, errorResponse{Error: message})
}

// sendResponse encodes resp as YAML when the client prefers it, JSON otherwise.
func sendResponse(ctx *fiber.Ctx, statusCode int, resp any) (err error) {

	kind := content.Kind(ctx.Accepts(content.CanonicalMIME(content.KindJSON), content.CanonicalMIME(content.KindYAML)))

	var body []byte
	if body, err = content.Marshal(kind, resp); err != nil {
		ctx.Status(fiber.StatusInternalServerError)
		return err
	}
	ctx.Response().Header.SetContentType(content.CanonicalMIME(kind))
	ctx.Status(statusCode)
	return ctx.Send(body)
}
