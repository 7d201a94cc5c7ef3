package uibind

import "errors"

var (
	// ErrIndexOutOfBounds signals a positional index outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("uibind: index out of bounds")
	// ErrNotSupported signals a direct mutation on a read-only view.
	ErrNotSupported = errors.New("uibind: operation not supported")
)
