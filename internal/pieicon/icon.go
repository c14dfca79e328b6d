// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package pieicon renders pie chart data as an SVG marker icon.
package pieicon

import (
	"strings"

	"piemarker/internal/pie"
	"piemarker/internal/svg"
)

const (
	// viewBox is a 2x2 square around the origin, matching the unit circle of the slices.
	viewBox = "-1 -1 2 2"
	// markerIconClass is the class every marker icon carries for map stylesheets.
	markerIconClass = "leaflet-marker-icon"

	transformRotate         = "rotate(-90)"
	transformCenteredRotate = "translate(-1 -1) rotate(-90)"
)

// Icon is a pie chart icon. It is not safe for concurrent use.
type Icon struct {
	config *config
	slices []pie.SliceOutput
}

// New validates the options and returns an icon ready to render.
func New(opts ...Option) (icon *Icon, err error) {

	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}
	if err = c.validate(); err != nil {
		return nil, err
	}
	return &Icon{config: c}, nil
}

// CreateIcon renders the icon. When old is not nil its slices are cleared and
// rebuilt in place and old itself is returned, so a surface already attached
// to a map pane never has to be relinked.
//
// CreateIcon panics if old has no slice group: a surface passed back here must
// come from a previous CreateIcon call.
func (i *Icon) CreateIcon(old *svg.Surface) (surface *svg.Surface, err error) {

	var slices []pie.SliceOutput
	if slices, err = pie.Compute(i.config.data, i.config.precision); err != nil {
		return nil, err
	}
	surface = i.createSurface(old)
	i.applySlices(surface, slices)
	i.slices = slices
	return surface, nil
}

// CreateShadow returns nil: pie icons have no shadow.
func (i *Icon) CreateShadow(*svg.Surface) *svg.Surface {
	return nil
}

// SetData replaces the slices drawn by the next CreateIcon call.
func (i *Icon) SetData(data ...pie.SliceInput) (err error) {

	if _, err = pie.Compute(data, i.config.precision); err != nil {
		return err
	}
	i.config.data = append([]pie.SliceInput(nil), data...)
	return nil
}

// Slices returns the geometry computed by the last CreateIcon call.
func (i *Icon) Slices() []pie.SliceOutput {
	return append([]pie.SliceOutput(nil), i.slices...)
}

func (i *Icon) Data() []pie.SliceInput {
	return append([]pie.SliceInput(nil), i.config.data...)
}

func (i *Icon) Precision() int { return i.config.precision }

// Size is the configured pixel size of the icon.
func (i *Icon) Size() svg.Size {
	return svg.Size{Width: float64(i.config.width), Height: float64(i.config.height)}
}

func (i *Icon) createSurface(old *svg.Surface) *svg.Surface {

	if old != nil {
		group := old.Group()
		if group == nil {
			panic("pieicon: reused surface has no slice group")
		}
		for child := group.FirstChild(); child != nil; child = group.FirstChild() {
			group.RemoveChild(child)
		}
		return old
	}

	surface := svg.NewSurface(i.config.width, i.config.height)
	root := surface.Root()
	root.SetAttr("viewBox", viewBox)
	root.SetAttr("overflow", "visible")
	root.SetAttr("class", strings.TrimSpace(markerIconClass+" "+i.config.className))

	group := svg.NewNode(svg.ElementGroup)
	if i.config.iconCenter {
		group.SetAttr("transform", transformCenteredRotate)
	} else {
		group.SetAttr("transform", transformRotate)
	}
	root.AppendChild(group)
	return surface
}

func (i *Icon) applySlices(surface *svg.Surface, slices []pie.SliceOutput) {

	group := surface.Group()
	for _, s := range slices {
		group.AppendChild(svg.NewNode(svg.ElementPath).
			SetAttr("d", s.Path).
			SetAttr("fill", s.Color).
			SetAttr("style", s.Style))
	}
}
