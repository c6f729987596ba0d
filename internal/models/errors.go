package models

import "errors"

// Sentinel errors for network lookups.
var (
	ErrStopNotFound  = errors.New("stop not found")
	ErrDuplicateStop = errors.New("duplicate stop id")
)

// ErrInvalidDataset indicates the stop/route source was unreadable or structurally invalid.
var ErrInvalidDataset = errors.New("invalid dataset")

// Sentinel errors for query configuration.
var (
	ErrConflictingRouteConstraints = errors.New("forbidden routes and allowed routes cannot both be set")
	ErrConflictingStopConstraints  = errors.New("forbidden stops and allowed stops cannot both be set")
)

// ErrUnknownAlgorithm is returned when a search algorithm name is not recognised.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")
