// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package marker

import (
	"math"

	"github.com/golang/geo/s2"
)

const (
	// tileSize is the pixel size of one map tile at zoom 0.
	tileSize = 256
	// maxLatitude is the latitude at which Web Mercator becomes a square world.
	maxLatitude = 85.0511287798
)

// LatLng is a geographic position in degrees.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Point is a position in screen pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

func (p Point) Round() Point { return Point{X: math.Round(p.X), Y: math.Round(p.Y)} }

// Project converts ll to absolute world pixels at the given zoom using
// spherical Web Mercator with 256px tiles. The origin is the top-left corner
// of the world.
func Project(ll LatLng, zoom int) Point {

	worldSize := tileSize * math.Exp2(float64(zoom))
	lat := math.Max(math.Min(ll.Lat, maxLatitude), -maxLatitude)

	proj := s2.NewMercatorProjection(worldSize / 2)
	p := proj.FromLatLng(s2.LatLngFromDegrees(lat, ll.Lng))
	return Point{
		X: worldSize/2 + p.X,
		Y: worldSize/2 - p.Y,
	}
}
