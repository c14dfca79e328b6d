// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package pieicon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"piemarker/internal/pie"
	"piemarker/internal/svg"
)

func TestNew_validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{name: "zero width", opts: []Option{WithIconSize(0, 10)}, want: ErrInvalidSize},
		{name: "negative height", opts: []Option{WithIconSize(10, -1)}, want: ErrInvalidSize},
		{name: "negative precision", opts: []Option{WithPrecision(-2)}, want: pie.ErrInvalidPrecision},
		{name: "zero total", opts: []Option{WithData(pie.SliceInput{Value: 0})}, want: pie.ErrZeroTotal},
		{name: "negative value", opts: []Option{WithData(pie.SliceInput{Value: -3})}, want: pie.ErrInvalidValue},
		{name: "defaults", opts: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := New(tt.opts...); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateIcon_newSurface(t *testing.T) {
	t.Parallel()

	icon, err := New(
		WithIconSize(50, 40),
		WithClassName("my-pie"),
		WithData(
			pie.SliceInput{Label: "A", Value: 1, Color: "red", Style: "stroke:black"},
			pie.SliceInput{Label: "B", Value: 3, Color: "blue"},
		),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	surface, err := icon.CreateIcon(nil)
	if err != nil {
		t.Fatalf("CreateIcon() error = %v", err)
	}

	wantRoot := []svg.Attr{
		{Name: "width", Value: "50"},
		{Name: "height", Value: "40"},
		{Name: "viewBox", Value: "-1 -1 2 2"},
		{Name: "overflow", Value: "visible"},
		{Name: "class", Value: "leaflet-marker-icon my-pie"},
	}
	if diff := cmp.Diff(wantRoot, surface.Root().Attrs()); diff != "" {
		t.Errorf("root attributes mismatch (-want +got):\n%s", diff)
	}

	group := surface.Group()
	if transform, _ := group.Attr("transform"); transform != "rotate(-90)" {
		t.Errorf("group transform = %q, want rotate(-90)", transform)
	}
	paths := group.Children()
	if len(paths) != 2 {
		t.Fatalf("group has %d children, want 2", len(paths))
	}

	slices := icon.Slices()
	for i, p := range paths {
		d, _ := p.Attr("d")
		fill, _ := p.Attr("fill")
		if d != slices[i].Path || fill != slices[i].Color {
			t.Errorf("path #%d = (%q, %q), want (%q, %q)", i, d, fill, slices[i].Path, slices[i].Color)
		}
	}
	if style, _ := paths[0].Attr("style"); style != "stroke:black" {
		t.Errorf("path #0 style = %q, want stroke:black", style)
	}
	if style, found := paths[1].Attr("style"); !found || style != "" {
		t.Errorf("path #1 style = (%q, %v), want empty attribute", style, found)
	}
	if got := []float64{slices[0].Percent, slices[1].Percent}; !cmp.Equal(got, []float64{25, 75}) {
		t.Errorf("percents = %v, want [25 75]", got)
	}
}

func TestCreateIcon_iconCenter(t *testing.T) {
	t.Parallel()

	icon, err := New(WithIconCenter(true))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	surface, err := icon.CreateIcon(nil)
	if err != nil {
		t.Fatalf("CreateIcon() error = %v", err)
	}
	if transform, _ := surface.Group().Attr("transform"); transform != "translate(-1 -1) rotate(-90)" {
		t.Errorf("group transform = %q, want translate(-1 -1) rotate(-90)", transform)
	}
	if class, _ := surface.Root().Attr("class"); class != "leaflet-marker-icon" {
		t.Errorf("class = %q, want leaflet-marker-icon", class)
	}
}

func TestCreateIcon_empty(t *testing.T) {
	t.Parallel()

	icon, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	surface, err := icon.CreateIcon(nil)
	if err != nil {
		t.Fatalf("CreateIcon() error = %v", err)
	}
	if n := surface.Group().ChildCount(); n != 0 {
		t.Errorf("empty icon has %d slices, want 0", n)
	}
	if got := surface.RenderedSize(); got != (svg.Size{Width: 100, Height: 100}) {
		t.Errorf("RenderedSize() = %v, want default 100x100", got)
	}
}

func TestCreateIcon_reuse(t *testing.T) {
	t.Parallel()

	icon, err := New(WithData(
		pie.SliceInput{Value: 1, Color: "red"},
		pie.SliceInput{Value: 1, Color: "blue"},
		pie.SliceInput{Value: 1, Color: "green"},
	))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	first, err := icon.CreateIcon(nil)
	if err != nil {
		t.Fatalf("CreateIcon() error = %v", err)
	}
	group := first.Group()

	if err = icon.SetData(pie.SliceInput{Value: 2, Color: "black"}, pie.SliceInput{Value: 5, Color: "white"}); err != nil {
		t.Fatalf("SetData() error = %v", err)
	}
	second, err := icon.CreateIcon(first)
	if err != nil {
		t.Fatalf("CreateIcon() error = %v", err)
	}

	if second != first {
		t.Error("CreateIcon(old) returned a new surface")
	}
	if second.Group() != group {
		t.Error("CreateIcon(old) replaced the slice group")
	}
	paths := group.Children()
	if len(paths) != 2 {
		t.Fatalf("reused group has %d children, want 2", len(paths))
	}
	for i, want := range []string{"black", "white"} {
		if fill, _ := paths[i].Attr("fill"); fill != want {
			t.Errorf("path #%d fill = %q, want %q", i, fill, want)
		}
	}
}

func TestCreateIcon_reuseWithoutGroupPanics(t *testing.T) {
	t.Parallel()

	icon, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("CreateIcon did not panic on a surface without a slice group")
		}
	}()
	_, _ = icon.CreateIcon(svg.NewSurface(10, 10))
}

func TestSetData_invalidKeepsPrevious(t *testing.T) {
	t.Parallel()

	icon, err := New(WithData(pie.SliceInput{Value: 1, Color: "red"}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err = icon.SetData(pie.SliceInput{Value: 0}); !errors.Is(err, pie.ErrZeroTotal) {
		t.Fatalf("SetData() error = %v, want %v", err, pie.ErrZeroTotal)
	}
	if got := icon.Data(); len(got) != 1 || got[0].Color != "red" {
		t.Errorf("Data() = %v, want the original slice", got)
	}
}
