// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package marker

import (
	"piemarker/internal/svg"
)

// IconFactory builds the elements a marker shows. CreateIcon gets the
// previous icon, if any, so implementations may rebuild it in place.
type IconFactory interface {
	CreateIcon(old *svg.Surface) (*svg.Surface, error)
	CreateShadow(old *svg.Surface) *svg.Surface
}

type config struct {
	// icon builds the icon and shadow elements.
	icon IconFactory
	// zIndexOffset is added to the y position to get the stacking order.
	zIndexOffset int
}

func newConfig() *config {
	return &config{}
}

type Option func(*config)

func WithIcon(icon IconFactory) Option {
	return func(c *config) {
		c.icon = icon
	}
}

func WithZIndexOffset(offset int) Option {
	return func(c *config) {
		c.zIndexOffset = offset
	}
}
