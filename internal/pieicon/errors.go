// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package pieicon

import "errors"

// ErrInvalidSize is returned when an icon dimension is not positive.
var ErrInvalidSize = errors.New("icon size must be positive")
