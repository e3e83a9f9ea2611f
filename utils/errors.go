package utils

import "errors"

var (
	ErrHeapFull        = errors.New("heap full")
	ErrHeapEmpty       = errors.New("heap empty")
	ErrHeapClosed      = errors.New("heap closed")
	ErrInvalidCapacity = errors.New("invalid heap capacity")
	ErrInvalidIndex    = errors.New("index out of range")

	// ErrInvariant is returned by Verify when a parent key is larger than one
	// of its children.
	ErrInvariant = errors.New("heap order violated")
)

var ErrUnsortedRun = errors.New("run not sorted by key")
