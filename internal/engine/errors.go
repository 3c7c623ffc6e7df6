package engine

import "errors"

// ErrNameRequired is returned when a hunter name is blank after trimming.
var ErrNameRequired = errors.New("hunter name is required")
