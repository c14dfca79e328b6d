// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package model holds the persisted form of pie chart markers.
package model

import (
	"time"

	"piemarker/internal/marker"
	"piemarker/internal/pie"
	"piemarker/internal/pieicon"
	"piemarker/internal/piemarker"
)

type Definition struct {
	ID           string    `json:"id" yaml:"id,omitempty"`
	Title        string    `json:"title,omitempty" yaml:"title,omitempty"`
	Lat          float64   `json:"lat" yaml:"lat"`
	Lng          float64   `json:"lng" yaml:"lng"`
	ZIndexOffset int       `json:"zIndexOffset,omitempty" yaml:"zIndexOffset,omitempty"`
	Icon         Icon      `json:"icon" yaml:"icon"`
	CreatedAt    time.Time `json:"createdAt" yaml:"-"`
}

type Icon struct {
	Data       []pie.SliceInput `json:"data" yaml:"data"`
	IconSize   *Size            `json:"iconSize,omitempty" yaml:"iconSize,omitempty"`
	IconCenter bool             `json:"iconCenter,omitempty" yaml:"iconCenter,omitempty"`
	// Precision is nil for the icon default.
	Precision *int   `json:"precision,omitempty" yaml:"precision,omitempty"`
	ClassName string `json:"className,omitempty" yaml:"className,omitempty"`
}

type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Options converts the stored icon into pie icon options. Unset fields keep the icon defaults.
func (i Icon) Options() (opts []pieicon.Option) {

	opts = append(opts, pieicon.WithData(i.Data...), pieicon.WithIconCenter(i.IconCenter))
	if i.IconSize != nil {
		opts = append(opts, pieicon.WithIconSize(i.IconSize.Width, i.IconSize.Height))
	}
	if i.Precision != nil {
		opts = append(opts, pieicon.WithPrecision(*i.Precision))
	}
	if i.ClassName != "" {
		opts = append(opts, pieicon.WithClassName(i.ClassName))
	}
	return opts
}

func (d *Definition) LatLng() marker.LatLng {
	return marker.LatLng{Lat: d.Lat, Lng: d.Lng}
}

// NewMarker builds the centered pie marker described by d.
func (d *Definition) NewMarker() (*piemarker.Marker, error) {
	return piemarker.New(d.LatLng(),
		piemarker.WithIconOptions(d.Icon.Options()...),
		piemarker.WithMarkerOptions(marker.WithZIndexOffset(d.ZIndexOffset)),
	)
}
