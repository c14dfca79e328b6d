// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package piemarker

import (
	"piemarker/internal/marker"
	"piemarker/internal/pieicon"
)

type config struct {
	// icon is used as is when set, iconOptions are ignored then.
	icon          *pieicon.Icon
	iconOptions   []pieicon.Option
	markerOptions []marker.Option
}

type Option func(*config)

func WithIcon(icon *pieicon.Icon) Option {
	return func(c *config) {
		c.icon = icon
	}
}

func WithIconOptions(opts ...pieicon.Option) Option {
	return func(c *config) {
		c.iconOptions = append(c.iconOptions, opts...)
	}
}

func WithMarkerOptions(opts ...marker.Option) Option {
	return func(c *config) {
		c.markerOptions = append(c.markerOptions, opts...)
	}
}
