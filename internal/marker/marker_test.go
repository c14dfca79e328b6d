// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package marker

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"piemarker/internal/svg"
)

type boxFactory struct {
	width, height int
	reuse         bool
	shadow        bool
	err           error
	calls         int
}

func (f *boxFactory) CreateIcon(old *svg.Surface) (*svg.Surface, error) {

	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.reuse && old != nil {
		return old, nil
	}
	return svg.NewSurface(f.width, f.height), nil
}

func (f *boxFactory) CreateShadow(old *svg.Surface) *svg.Surface {

	if !f.shadow {
		return nil
	}
	if old != nil {
		return old
	}
	return svg.NewSurface(f.width, f.height)
}

type shiftPositioner struct {
	m     *Marker
	shift Point
}

func (p shiftPositioner) SetPos(pos Point) {
	p.m.PlaceAt(Point{X: pos.X + p.shift.X, Y: pos.Y + p.shift.Y})
}

func worldPane(zoom int) *Pane {
	return NewPane(zoom, LatLng{}, svg.Size{Width: 256, Height: 256})
}

func TestProject(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name   string
		latlng LatLng
		zoom   int
		want   Point
	}{
		{name: "origin", latlng: LatLng{}, zoom: 0, want: Point{X: 128, Y: 128}},
		{name: "antimeridian", latlng: LatLng{Lng: 180}, zoom: 0, want: Point{X: 256, Y: 128}},
		{name: "west", latlng: LatLng{Lng: -90}, zoom: 0, want: Point{X: 64, Y: 128}},
		{name: "zoom one", latlng: LatLng{Lng: 90}, zoom: 1, want: Point{X: 384, Y: 256}},
		{name: "north edge", latlng: LatLng{Lat: maxLatitude}, zoom: 0, want: Point{X: 128, Y: 0}},
		{name: "clamped pole", latlng: LatLng{Lat: 90}, zoom: 0, want: Point{X: 128, Y: 0}},
		{name: "south edge", latlng: LatLng{Lat: -maxLatitude}, zoom: 2, want: Point{X: 512, Y: 1024}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Project(tt.latlng, tt.zoom)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
				t.Errorf("Project() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPane_LatLngToLayerPoint(t *testing.T) {

	t.Parallel()

	pane := NewPane(1, LatLng{}, svg.Size{Width: 100, Height: 50})
	if got, want := pane.Origin(), (Point{X: 206, Y: 231}); got != want {
		t.Fatalf("Origin() = %v, want %v", got, want)
	}
	if got, want := pane.LatLngToLayerPoint(LatLng{}), (Point{X: 50, Y: 25}); got != want {
		t.Errorf("LatLngToLayerPoint() = %v, want %v", got, want)
	}
}

func TestMarker_AddTo(t *testing.T) {

	t.Parallel()

	factory := &boxFactory{width: 20, height: 10}
	m := New(LatLng{Lng: 90}, WithIcon(factory), WithZIndexOffset(5))
	pane := worldPane(0)

	if err := m.AddTo(pane); err != nil {
		t.Fatalf("AddTo() error = %v", err)
	}

	placement, found := pane.Placement(m.Icon())
	if !found {
		t.Fatal("icon is not attached to the pane")
	}
	want := Placement{Position: Point{X: 192, Y: 128}, ZIndex: 133}
	if diff := cmp.Diff(want, placement); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}
	if m.ZIndex() != 133 {
		t.Errorf("ZIndex() = %d, want 133", m.ZIndex())
	}
	if m.Shadow() != nil {
		t.Error("Shadow() should be nil")
	}
}

func TestMarker_AddToWithoutIcon(t *testing.T) {

	t.Parallel()

	m := New(LatLng{})
	if err := m.AddTo(worldPane(0)); !errors.Is(err, ErrNoIcon) {
		t.Fatalf("AddTo() error = %v, want %v", err, ErrNoIcon)
	}
	if m.Layout() != nil {
		t.Error("marker should stay detached after a failed AddTo")
	}
}

func TestMarker_AddToFactoryError(t *testing.T) {

	t.Parallel()

	errBroken := errors.New("broken")
	m := New(LatLng{}, WithIcon(&boxFactory{err: errBroken}))
	if err := m.AddTo(worldPane(0)); !errors.Is(err, errBroken) {
		t.Fatalf("AddTo() error = %v, want %v", err, errBroken)
	}
}

func TestMarker_Redraw(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name      string
		reuse     bool
		wantSame  bool
		wantCalls int
	}{
		{name: "reused surface", reuse: true, wantSame: true, wantCalls: 2},
		{name: "replaced surface", reuse: false, wantSame: false, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factory := &boxFactory{width: 10, height: 10, reuse: tt.reuse, shadow: true}
			m := New(LatLng{}, WithIcon(factory))
			pane := worldPane(0)
			if err := m.AddTo(pane); err != nil {
				t.Fatalf("AddTo() error = %v", err)
			}
			first := m.Icon()

			if err := m.Redraw(); err != nil {
				t.Fatalf("Redraw() error = %v", err)
			}
			if got := m.Icon() == first; got != tt.wantSame {
				t.Errorf("icon reused = %v, want %v", got, tt.wantSame)
			}
			if factory.calls != tt.wantCalls {
				t.Errorf("CreateIcon calls = %d, want %d", factory.calls, tt.wantCalls)
			}
			if got := len(pane.Elements()); got != 2 {
				t.Errorf("pane has %d elements, want icon and shadow", got)
			}
			if _, found := pane.Placement(m.Icon()); !found {
				t.Error("current icon is not attached")
			}
		})
	}
}

func TestMarker_Updates(t *testing.T) {

	t.Parallel()

	m := New(LatLng{Lng: 90}, WithIcon(&boxFactory{width: 10, height: 10, shadow: true}))
	pane := worldPane(0)
	if err := m.AddTo(pane); err != nil {
		t.Fatalf("AddTo() error = %v", err)
	}

	pane.SetView(1, LatLng{}, svg.Size{Width: 256, Height: 256})
	placement, _ := pane.Placement(m.Icon())
	if want := (Point{X: 256, Y: 128}); placement.Position != want {
		t.Errorf("after SetView position = %v, want %v", placement.Position, want)
	}
	shadow, _ := pane.Placement(m.Shadow())
	if shadow.Position != placement.Position {
		t.Errorf("shadow position = %v, want %v", shadow.Position, placement.Position)
	}

	m.SetLatLng(LatLng{Lng: -90})
	placement, _ = pane.Placement(m.Icon())
	if want := (Point{X: 0, Y: 128}); placement.Position != want {
		t.Errorf("after SetLatLng position = %v, want %v", placement.Position, want)
	}

	m.SetZIndexOffset(-28)
	placement, _ = pane.Placement(m.Icon())
	if placement.ZIndex != 100 {
		t.Errorf("after SetZIndexOffset z-index = %d, want 100", placement.ZIndex)
	}
}

func TestMarker_Remove(t *testing.T) {

	t.Parallel()

	m := New(LatLng{}, WithIcon(&boxFactory{width: 10, height: 10, shadow: true}))
	pane := worldPane(0)
	if err := m.AddTo(pane); err != nil {
		t.Fatalf("AddTo() error = %v", err)
	}
	m.Remove()

	if got := len(pane.Elements()); got != 0 {
		t.Errorf("pane has %d elements after Remove, want 0", got)
	}
	pane.SetView(3, LatLng{}, svg.Size{Width: 256, Height: 256})
	if m.Layout() != nil {
		t.Error("Layout() should be nil after Remove")
	}
}

func TestMarker_AddToAfterRemove(t *testing.T) {

	t.Parallel()

	for _, reuse := range []bool{false, true} {
		m := New(LatLng{}, WithIcon(&boxFactory{width: 10, height: 10, reuse: reuse, shadow: true}))
		first := worldPane(0)
		if err := m.AddTo(first); err != nil {
			t.Fatalf("AddTo(first) error = %v", err)
		}
		m.Remove()
		if m.Icon() != nil || m.Shadow() != nil {
			t.Errorf("reuse=%v: elements are kept after Remove", reuse)
		}

		second := worldPane(1)
		if err := m.AddTo(second); err != nil {
			t.Fatalf("AddTo(second) error = %v", err)
		}
		placement, found := second.Placement(m.Icon())
		if !found {
			t.Fatalf("reuse=%v: icon is not attached to the second pane", reuse)
		}
		want := Placement{Position: Point{X: 128, Y: 128}, ZIndex: 128}
		if diff := cmp.Diff(want, placement); diff != "" {
			t.Errorf("reuse=%v: placement mismatch (-want +got):\n%s", reuse, diff)
		}
		if got := len(second.Elements()); got != 2 {
			t.Errorf("reuse=%v: second pane has %d elements, want 2", reuse, got)
		}
		if got := len(first.Elements()); got != 0 {
			t.Errorf("reuse=%v: first pane has %d elements, want 0", reuse, got)
		}
	}
}

func TestMarker_AddToAnotherLayout(t *testing.T) {

	t.Parallel()

	m := New(LatLng{}, WithIcon(&boxFactory{width: 10, height: 10, reuse: true}))
	first, second := worldPane(0), worldPane(0)
	if err := m.AddTo(first); err != nil {
		t.Fatalf("AddTo(first) error = %v", err)
	}
	if err := m.AddTo(second); err != nil {
		t.Fatalf("AddTo(second) error = %v", err)
	}
	if _, found := second.Placement(m.Icon()); !found {
		t.Error("icon is not attached to the second pane")
	}
	if got := len(first.Elements()); got != 0 {
		t.Errorf("first pane has %d elements, want 0", got)
	}
}

func TestMarker_RedrawNotAdded(t *testing.T) {

	t.Parallel()

	f := &boxFactory{width: 10, height: 10}
	m := New(LatLng{}, WithIcon(f))
	if err := m.Redraw(); !errors.Is(err, ErrNotAdded) {
		t.Errorf("Redraw() error = %v, want %v", err, ErrNotAdded)
	}
	if err := m.SetIcon(&boxFactory{width: 20, height: 20}); err != nil {
		t.Errorf("SetIcon() error = %v", err)
	}
	if f.calls != 0 || m.Icon() != nil {
		t.Error("icon was built for a marker without a layout")
	}
}

func TestMarker_SetIcon(t *testing.T) {

	t.Parallel()

	m := New(LatLng{}, WithIcon(&boxFactory{width: 10, height: 10}))
	pane := worldPane(0)
	if err := m.AddTo(pane); err != nil {
		t.Fatalf("AddTo() error = %v", err)
	}
	old := m.Icon()

	if err := m.SetIcon(&boxFactory{width: 30, height: 30}); err != nil {
		t.Fatalf("SetIcon() error = %v", err)
	}
	if _, found := pane.Placement(old); found {
		t.Error("previous icon is still attached")
	}
	if got := pane.BoundingBox(m.Icon()); got != (svg.Size{Width: 30, Height: 30}) {
		t.Errorf("BoundingBox() = %v", got)
	}
}

func TestMarker_SetPositioner(t *testing.T) {

	t.Parallel()

	m := New(LatLng{}, WithIcon(&boxFactory{width: 10, height: 10}))
	m.SetPositioner(shiftPositioner{m: m, shift: Point{X: -3, Y: -7}})
	pane := worldPane(0)
	if err := m.AddTo(pane); err != nil {
		t.Fatalf("AddTo() error = %v", err)
	}

	placement, _ := pane.Placement(m.Icon())
	want := Placement{Position: Point{X: 125, Y: 121}, ZIndex: 121}
	if diff := cmp.Diff(want, placement); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}

	m.SetPositioner(nil)
	m.Update()
	placement, _ = pane.Placement(m.Icon())
	if placement.Position != (Point{X: 128, Y: 128}) {
		t.Errorf("default positioner position = %v", placement.Position)
	}
}

func TestPoint_Round(t *testing.T) {

	t.Parallel()

	got := Point{X: 1.5, Y: -2.5}.Round()
	if got != (Point{X: 2, Y: -3}) {
		t.Errorf("Round() = %v, want half away from zero", got)
	}
	if got := (Point{X: 3, Y: 4}).Sub(Point{X: 1, Y: 6}); got != (Point{X: 2, Y: -2}) {
		t.Errorf("Sub() = %v", got)
	}
}
