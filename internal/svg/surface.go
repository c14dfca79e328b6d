// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package svg is a minimal in-memory SVG element tree.
//
// It plays the part of the host drawing environment for icons: elements are
// created, attributed and linked in memory, rendered sizes are read back from
// the root element, and the tree is written out as SVG markup.
package svg

import (
	"strconv"
)

const (
	ElementSVG   = "svg"
	ElementGroup = "g"
	ElementPath  = "path"
)

// Size is a rendered size in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Surface is a drawable root element. The pointer identity of a Surface is
// stable across re-renders that reuse it.
type Surface struct {
	root *Node
}

// NewSurface allocates an <svg> root of the given pixel size.
func NewSurface(width, height int) *Surface {

	root := NewNode(ElementSVG)
	root.SetAttr("width", strconv.Itoa(width))
	root.SetAttr("height", strconv.Itoa(height))
	return &Surface{root: root}
}

func (s *Surface) Root() *Node { return s.root }

// Group returns the first <g> element of the surface, or nil.
func (s *Surface) Group() *Node {
	return s.root.Find(ElementGroup)
}

// RenderedSize reports the size the surface occupies on screen.
// It is taken from the width and height attributes of the root element;
// missing or malformed values measure as zero.
func (s *Surface) RenderedSize() Size {
	return Size{
		Width:  attrFloat(s.root, "width"),
		Height: attrFloat(s.root, "height"),
	}
}

func attrFloat(n *Node, name string) float64 {

	raw, found := n.Attr(name)
	if !found {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
