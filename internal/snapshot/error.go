package snapshot

import "errors"

var (
	// ErrNoSnapshot is an error that occurs when no snapshot exists at the
	// given path; callers can treat it as "no previous state".
	ErrNoSnapshot = errors.New("no snapshot exists")

	// ErrSnapshotCorrupt is an error that occurs when the stored integrity
	// digest does not match the loaded file map.
	ErrSnapshotCorrupt = errors.New("snapshot digest mismatch")

	// ErrSnapshotVersion is an error that occurs when a snapshot was written
	// by an incompatible format version.
	ErrSnapshotVersion = errors.New("unsupported snapshot format version")
)
