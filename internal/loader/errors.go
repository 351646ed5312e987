package loader

import "errors"

// ErrEmptyImage is returned for ROM files without any content.
var ErrEmptyImage = errors.New("program image is empty")
