// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package marker implements a map marker: an icon element placed at a
// geographic position on a Layout.
//
// Positioning is dispatched through a Positioner so that wrappers can change
// where the icon is drawn relative to the projected point without touching
// the rest of the marker life cycle.
package marker

import (
	"fmt"
	"math"

	"piemarker/internal/svg"
)

// Positioner places the marker elements for a projected layer point.
type Positioner interface {
	SetPos(pos Point)
}

// Marker is not safe for concurrent use.
type Marker struct {
	latlng LatLng
	config *config

	layout     Layout
	positioner Positioner

	icon   *svg.Surface
	shadow *svg.Surface
	zIndex int
}

func New(latlng LatLng, opts ...Option) *Marker {

	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}
	m := &Marker{latlng: latlng, config: c}
	m.positioner = m
	return m
}

// SetPositioner replaces the positioning behavior. Passing nil restores the default.
func (m *Marker) SetPositioner(p Positioner) {

	if p == nil {
		p = m
	}
	m.positioner = p
}

// AddTo builds the icon, attaches it to layout and positions it.
func (m *Marker) AddTo(layout Layout) (err error) {

	if m.layout != nil {
		m.Remove()
	}
	m.layout = layout
	if err = m.initIcon(); err != nil {
		m.layout = nil
		return err
	}
	layout.AddLayer(m)
	m.Update()
	return nil
}

// Remove detaches the marker elements from its layout and forgets them, the
// next AddTo builds new ones.
func (m *Marker) Remove() {

	if m.layout == nil {
		return
	}
	m.layout.RemoveLayer(m)
	if m.icon != nil {
		m.layout.Remove(m.icon)
	}
	if m.shadow != nil {
		m.layout.Remove(m.shadow)
	}
	m.icon, m.shadow = nil, nil
	m.layout = nil
}

// Update repositions the marker for the current view of its layout.
func (m *Marker) Update() {

	if m.layout == nil || m.icon == nil {
		return
	}
	m.positioner.SetPos(m.layout.LatLngToLayerPoint(m.latlng).Round())
}

// SetPos is the default positioning: the top-left corner of the icon goes to pos.
func (m *Marker) SetPos(pos Point) {
	m.PlaceAt(pos)
}

// PlaceAt puts the icon and shadow at pos and restacks the icon by its y position.
func (m *Marker) PlaceAt(pos Point) {

	if m.layout == nil {
		return
	}
	m.layout.SetPosition(m.icon, pos)
	if m.shadow != nil {
		m.layout.SetPosition(m.shadow, pos)
	}
	m.zIndex = int(math.Round(pos.Y)) + m.config.zIndexOffset
	m.layout.SetZIndex(m.icon, m.zIndex)
}

func (m *Marker) SetLatLng(latlng LatLng) {

	m.latlng = latlng
	m.Update()
}

func (m *Marker) LatLng() LatLng { return m.latlng }

func (m *Marker) SetZIndexOffset(offset int) {

	m.config.zIndexOffset = offset
	m.Update()
}

func (m *Marker) ZIndexOffset() int { return m.config.zIndexOffset }

// ZIndex is the stacking order computed by the last positioning.
func (m *Marker) ZIndex() int { return m.zIndex }

// SetIcon replaces the icon factory and redraws if the marker is on a layout.
func (m *Marker) SetIcon(icon IconFactory) (err error) {

	m.config.icon = icon
	if m.layout == nil {
		return nil
	}
	return m.Redraw()
}

// Redraw rebuilds the icon, reusing the current elements, and repositions it.
// It returns ErrNotAdded when the marker is not on a layout.
func (m *Marker) Redraw() (err error) {

	if m.layout == nil {
		return ErrNotAdded
	}
	if err = m.initIcon(); err != nil {
		return err
	}
	m.Update()
	return nil
}

func (m *Marker) Icon() *svg.Surface { return m.icon }

func (m *Marker) Shadow() *svg.Surface { return m.shadow }

func (m *Marker) Layout() Layout { return m.layout }

func (m *Marker) initIcon() (err error) {

	if m.config.icon == nil {
		return ErrNoIcon
	}

	var icon *svg.Surface
	if icon, err = m.config.icon.CreateIcon(m.icon); err != nil {
		return fmt.Errorf("%s: %w", "failed to create icon", err)
	}
	m.icon = m.swap(m.icon, icon)
	m.shadow = m.swap(m.shadow, m.config.icon.CreateShadow(m.shadow))
	return nil
}

// swap replaces old with el on the layout unless the factory reused old.
func (m *Marker) swap(old, el *svg.Surface) *svg.Surface {

	if old == el {
		return el
	}
	if old != nil {
		m.layout.Remove(old)
	}
	if el != nil {
		m.layout.Add(el)
	}
	return el
}
