package engine

import "errors"

// ErrInvalidLevel is returned by LoadLevel for an index outside the level set.
var ErrInvalidLevel = errors.New("invalid level")
