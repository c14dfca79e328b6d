// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package marker

import "errors"

var (
	// ErrNoIcon is returned when a marker without an icon factory is added to a layout.
	ErrNoIcon = errors.New("marker has no icon")
	// ErrNotAdded is returned by operations that need the marker to be on a layout.
	ErrNotAdded = errors.New("marker is not added to a layout")
)
