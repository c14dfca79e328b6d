// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package piemarker provides a map marker that shows a pie chart icon with
// its visual center, not its top-left corner, on the marker position.
package piemarker

import (
	"fmt"
	"math"

	"piemarker/internal/marker"
	"piemarker/internal/pie"
	"piemarker/internal/pieicon"
	"piemarker/internal/svg"
)

type Marker struct {
	*marker.Marker
	icon *pieicon.Icon
}

func New(latlng marker.LatLng, opts ...Option) (m *Marker, err error) {

	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	icon := c.icon
	if icon == nil {
		if icon, err = pieicon.New(c.iconOptions...); err != nil {
			return nil, fmt.Errorf("%s: %w", "failed to create pie icon", err)
		}
	}

	markerOptions := append(append([]marker.Option(nil), c.markerOptions...), marker.WithIcon(icon))
	m = &Marker{
		Marker: marker.New(latlng, markerOptions...),
		icon:   icon,
	}
	m.SetPositioner(m)
	return m, nil
}

// SetPos centers the icon on pos using the bounding box reported by the layout.
func (m *Marker) SetPos(pos marker.Point) {

	layout := m.Layout()
	if layout == nil {
		return
	}
	m.PlaceAt(Center(pos, layout.BoundingBox(m.Icon())))
}

// PieIcon returns the icon the marker draws.
func (m *Marker) PieIcon() *pieicon.Icon { return m.icon }

// SetData replaces the chart data and redraws the marker in place when it
// is on a layout.
func (m *Marker) SetData(data ...pie.SliceInput) (err error) {

	if err = m.icon.SetData(data...); err != nil {
		return err
	}
	if m.Layout() == nil {
		return nil
	}
	return m.Redraw()
}

// Center returns the top-left position that puts the middle of a box of size
// bbox on target. Half sizes are rounded half away from zero.
func Center(target marker.Point, bbox svg.Size) marker.Point {
	return marker.Point{
		X: target.X - math.Round(bbox.Width/2),
		Y: target.Y - math.Round(bbox.Height/2),
	}
}
