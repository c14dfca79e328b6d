// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package marker

import (
	"piemarker/internal/svg"
)

// Layer is anything the layout repositions when the view changes.
type Layer interface {
	Update()
}

// Layout is the host map a marker is drawn on: it converts geographic
// positions to layer pixels, owns the element stack and measures elements.
type Layout interface {
	AddLayer(l Layer)
	RemoveLayer(l Layer)
	LatLngToLayerPoint(ll LatLng) Point

	Add(el *svg.Surface)
	Remove(el *svg.Surface)
	BoundingBox(el *svg.Surface) svg.Size
	SetPosition(el *svg.Surface, pos Point)
	SetZIndex(el *svg.Surface, z int)
}

// Placement is what a Pane knows about one element.
type Placement struct {
	Position Point `json:"position"`
	ZIndex   int   `json:"zIndex"`
}

// Pane is an in-memory Layout. It keeps a view (zoom plus the pixel origin of
// the top-left corner) and records element positions and stacking order.
type Pane struct {
	zoom   int
	origin Point

	layers   []Layer
	elements map[*svg.Surface]*Placement
	order    []*svg.Surface
}

// NewPane creates a pane showing center at zoom in a viewport of the given size.
func NewPane(zoom int, center LatLng, size svg.Size) *Pane {

	p := &Pane{elements: make(map[*svg.Surface]*Placement)}
	p.setView(zoom, center, size)
	return p
}

// SetView moves the view and repositions every layer.
func (p *Pane) SetView(zoom int, center LatLng, size svg.Size) {

	p.setView(zoom, center, size)
	for _, l := range p.layers {
		l.Update()
	}
}

func (p *Pane) setView(zoom int, center LatLng, size svg.Size) {

	p.zoom = zoom
	p.origin = Project(center, zoom).Sub(Point{X: size.Width / 2, Y: size.Height / 2}).Round()
}

func (p *Pane) Zoom() int { return p.zoom }

func (p *Pane) Origin() Point { return p.origin }

func (p *Pane) AddLayer(l Layer) {

	for _, existing := range p.layers {
		if existing == l {
			return
		}
	}
	p.layers = append(p.layers, l)
}

func (p *Pane) RemoveLayer(l Layer) {

	for i, existing := range p.layers {
		if existing == l {
			p.layers = append(p.layers[:i], p.layers[i+1:]...)
			return
		}
	}
}

func (p *Pane) LatLngToLayerPoint(ll LatLng) Point {
	return Project(ll, p.zoom).Sub(p.origin).Round()
}

func (p *Pane) Add(el *svg.Surface) {

	if _, found := p.elements[el]; found {
		return
	}
	p.elements[el] = &Placement{}
	p.order = append(p.order, el)
}

func (p *Pane) Remove(el *svg.Surface) {

	if _, found := p.elements[el]; !found {
		return
	}
	delete(p.elements, el)
	for i, existing := range p.order {
		if existing == el {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// BoundingBox measures the rendered size of el.
func (p *Pane) BoundingBox(el *svg.Surface) svg.Size {
	return el.RenderedSize()
}

func (p *Pane) SetPosition(el *svg.Surface, pos Point) {

	if placement, found := p.elements[el]; found {
		placement.Position = pos
	}
}

func (p *Pane) SetZIndex(el *svg.Surface, z int) {

	if placement, found := p.elements[el]; found {
		placement.ZIndex = z
	}
}

// Placement returns the recorded position and z-index of el.
func (p *Pane) Placement(el *svg.Surface) (placement Placement, found bool) {

	var recorded *Placement
	if recorded, found = p.elements[el]; !found {
		return Placement{}, false
	}
	return *recorded, true
}

// Elements returns the attached elements in the order they were added.
func (p *Pane) Elements() []*svg.Surface {
	return append([]*svg.Surface(nil), p.order...)
}
