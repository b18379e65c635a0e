package hashtable

import "errors"

var (
	ErrInvalidCapacity   = errors.New("invalid capacity")
	ErrInvalidLoadFactor = errors.New("invalid load factor")
	ErrUnknownHasher     = errors.New("unknown hasher")
)
