package index

import "errors"

var (
	// ErrRealPathUnsupported is an error that occurs whenever real path
	// resolution is requested from a [FileMap]; the index never resolves
	// symbolic links and callers must not depend on it doing so.
	ErrRealPathUnsupported = errors.New("real path resolution is unsupported")
)
