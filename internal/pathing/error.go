package pathing

import "errors"

var (
	// ErrRootIsRelative is an error that occurs when a root directory is
	// given as a relative path where an absolute one is required.
	ErrRootIsRelative = errors.New("root directory is not absolute")
)
