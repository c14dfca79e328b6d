// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"piemarker/internal/content"
	"piemarker/internal/form"
	"piemarker/internal/legend"
	"piemarker/internal/marker"
	"piemarker/internal/model"
	"piemarker/internal/pie"
	"piemarker/internal/svg"
	"piemarker/internal/validate"
)

const (
	maxZoom = 24

	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024

	mimeSVG      = "image/svg+xml"
	mimeMarkdown = "text/markdown; charset=utf-8"
)

type placementQuery struct {
	Zoom   int      `json:"zoom"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
}

func defaultPlacementQuery() placementQuery {
	return placementQuery{Width: defaultViewSize, Height: defaultViewSize}
}

type qrQuery struct {
	Size int `json:"size"`
}

type markerLinks struct {
	Icon      string `json:"icon" yaml:"icon"`
	Placement string `json:"placement" yaml:"placement"`
	Legend    string `json:"legend" yaml:"legend"`
	QR        string `json:"qr" yaml:"qr"`
}

type markerView struct {
	Marker *model.Definition `json:"marker" yaml:"marker"`
	Slices []pie.SliceOutput `json:"slices" yaml:"slices"`
	Links  markerLinks       `json:"links" yaml:"links"`
}

type placementView struct {
	Zoom     int          `json:"zoom" yaml:"zoom"`
	Origin   marker.Point `json:"origin" yaml:"origin"`
	Anchor   marker.Point `json:"anchor" yaml:"anchor"`
	Position marker.Point `json:"position" yaml:"position"`
	ZIndex   int          `json:"zIndex" yaml:"zIndex"`
	Size     svg.Size     `json:"size" yaml:"size"`
}

func (srv *Server) listMarkers(ctx *fiber.Ctx) (err error) {

	var defs []*model.Definition
	if defs, err = srv.store.List(ctx.UserContext()); err != nil {
		return err
	}
	return sendResponse(ctx, fiber.StatusOK, defs)
}

func (srv *Server) createMarker(ctx *fiber.Ctx) (err error) {

	var def model.Definition
	if err = content.Unmarshal(content.Kind(ctx.Get(fiber.HeaderContentType)), ctx.Body(), &def); err != nil {
		return err
	}
	if err = validate.ValidateDefinition(&def); err != nil {
		return err
	}
	if err = srv.store.Create(ctx.UserContext(), &def); err != nil {
		return err
	}
	srv.log.Info("marker created", slog.String("id", def.ID), slog.Int("slices", len(def.Icon.Data)))
	ctx.Location(srv.link(ctx, def.ID, ""))
	return sendResponse(ctx, fiber.StatusCreated, &def)
}

func (srv *Server) getMarker(ctx *fiber.Ctx) (err error) {

	var def *model.Definition
	var e *renderEntry
	if def, e, err = srv.lookup(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	slices := e.marker.PieIcon().Slices()
	e.mu.Unlock()

	return sendResponse(ctx, fiber.StatusOK, markerView{Marker: def, Slices: slices, Links: srv.links(ctx, def.ID)})
}

func (srv *Server) deleteMarker(ctx *fiber.Ctx) (err error) {

	id := ctx.Params("id")
	if err = srv.renders.drop(ctx.UserContext(), srv.store, id); err != nil {
		return err
	}
	srv.log.Info("marker deleted", slog.String("id", id))
	return ctx.SendStatus(fiber.StatusNoContent)
}

// updateMarkerData replaces the slices of a marker. The live icon is redrawn
// into its existing surface. The marker lock covers both the store write and
// the redraw, so concurrent updates land in the same order in both.
func (srv *Server) updateMarkerData(ctx *fiber.Ctx) (err error) {

	var data []pie.SliceInput
	if err = content.Unmarshal(content.Kind(ctx.Get(fiber.HeaderContentType)), ctx.Body(), &data); err != nil {
		return err
	}

	var e *renderEntry
	if _, e, err = srv.lookup(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var def *model.Definition
	if def, err = srv.store.Get(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}
	def.Icon.Data = data
	if err = validate.ValidateIcon(def.Icon); err != nil {
		return err
	}

	before := e.marker.Icon()
	previous := e.marker.PieIcon().Data()
	start := time.Now()
	if err = e.marker.SetData(data...); err != nil {
		return err
	}
	if err = srv.store.Update(ctx.UserContext(), def); err != nil {
		if restoreErr := e.marker.SetData(previous...); restoreErr != nil {
			srv.log.Error("failed to restore marker data", slog.String("id", def.ID), slog.Any("error", restoreErr))
		}
		return err
	}
	srv.recordRender(ctx.UserContext(), start, before == e.marker.Icon())
	return sendResponse(ctx, fiber.StatusOK, markerView{Marker: def, Slices: e.marker.PieIcon().Slices(), Links: srv.links(ctx, def.ID)})
}

func (srv *Server) markerIcon(ctx *fiber.Ctx) (err error) {

	var e *renderEntry
	if _, e, err = srv.lookup(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	start := time.Now()
	markup := e.marker.Icon().Markup()
	e.mu.Unlock()
	srv.recordRender(ctx.UserContext(), start, true)

	ctx.Set(fiber.HeaderContentType, mimeSVG)
	return ctx.SendString(markup)
}

// markerPlacement moves the marker pane to the requested view and reports
// where the centered icon is drawn.
func (srv *Server) markerPlacement(ctx *fiber.Ctx) (err error) {

	q := defaultPlacementQuery()
	if err = decodeQuery(ctx, &q); err != nil {
		return err
	}
	if q.Zoom < 0 || q.Zoom > maxZoom {
		return errInvalidZoom
	}
	if q.Width <= 0 || q.Height <= 0 {
		return errInvalidView
	}

	var def *model.Definition
	var e *renderEntry
	if def, e, err = srv.lookup(ctx); err != nil {
		return err
	}
	center := def.LatLng()
	if q.Lat != nil {
		center.Lat = *q.Lat
	}
	if q.Lng != nil {
		center.Lng = *q.Lng
	}
	if err = validate.ValidateLatLng(center.Lat, center.Lng); err != nil {
		return err
	}

	e.mu.Lock()
	e.pane.SetView(q.Zoom, center, svg.Size{Width: float64(q.Width), Height: float64(q.Height)})
	icon := e.marker.Icon()
	placement, _ := e.pane.Placement(icon)
	view := placementView{
		Zoom:     e.pane.Zoom(),
		Origin:   e.pane.Origin(),
		Anchor:   e.pane.LatLngToLayerPoint(e.marker.LatLng()),
		Position: placement.Position,
		ZIndex:   placement.ZIndex,
		Size:     e.pane.BoundingBox(icon),
	}
	e.mu.Unlock()

	return sendResponse(ctx, fiber.StatusOK, view)
}

func (srv *Server) markerLegend(ctx *fiber.Ctx) (err error) {

	var def *model.Definition
	var e *renderEntry
	if def, e, err = srv.lookup(ctx); err != nil {
		return err
	}

	opts := []legend.Option{legend.WithIconURL(srv.link(ctx, def.ID, "icon.svg"))}
	if def.Title != "" {
		opts = append(opts, legend.WithTitle(def.Title))
	}

	e.mu.Lock()
	icon := e.marker.PieIcon()
	l := legend.New(icon.Slices(), append(opts, legend.WithPrecision(icon.Precision()))...)
	e.mu.Unlock()

	var text string
	if text, err = l.Render(); err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, mimeMarkdown)
	return ctx.SendString(text)
}

func (srv *Server) markerQR(ctx *fiber.Ctx) (err error) {

	q := qrQuery{Size: defaultQRSize}
	if err = decodeQuery(ctx, &q); err != nil {
		return err
	}
	if q.Size < minQRSize || q.Size > maxQRSize {
		return errInvalidQR
	}

	var def *model.Definition
	if def, err = srv.store.Get(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}

	var qr *qrcode.QRCode
	if qr, err = qrcode.New(srv.link(ctx, def.ID, "icon.svg"), qrcode.Medium); err != nil {
		return err
	}
	var png []byte
	if png, err = qr.PNG(q.Size); err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(png)
}

// lookup loads the definition named by the id path parameter and its live marker.
func (srv *Server) lookup(ctx *fiber.Ctx) (def *model.Definition, e *renderEntry, err error) {

	id := ctx.Params("id")
	if def, err = srv.store.Get(ctx.UserContext(), id); err != nil {
		return nil, nil, err
	}
	if e, err = srv.renders.entry(ctx.UserContext(), srv.store, id); err != nil {
		return nil, nil, err
	}
	return def, e, nil
}

func (srv *Server) recordRender(ctx context.Context, start time.Time, reused bool) {

	attrs := metric.WithAttributes(attribute.Bool("reused", reused))
	srv.metrics.RendersTotal.Add(ctx, 1, attrs)
	srv.metrics.RenderDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func (srv *Server) links(ctx *fiber.Ctx, id string) markerLinks {

	placement := defaultPlacementQuery()
	return markerLinks{
		Icon:      srv.link(ctx, id, "icon.svg"),
		Placement: srv.link(ctx, id, "placement") + "?" + form.Encode(placement).Encode(),
		Legend:    srv.link(ctx, id, "legend.md"),
		QR:        srv.link(ctx, id, "qr.png"),
	}
}

// link returns the absolute URL of a marker resource.
func (srv *Server) link(ctx *fiber.Ctx, id, resource string) string {

	base := srv.publicURL
	if base == "" {
		base = ctx.BaseURL()
	}
	href := base + "/api/markers/" + id
	if resource != "" {
		href += "/" + resource
	}
	return href
}

// decodeQuery fills dst from the query string; absent keys keep their values.
func decodeQuery(ctx *fiber.Ctx, dst any) (err error) {

	var values url.Values
	if values, err = url.ParseQuery(string(ctx.Request().URI().QueryString())); err != nil {
		return fmt.Errorf("%w: %w", form.ErrInvalidField, err)
	}
	return form.Decode(values, dst)
}
