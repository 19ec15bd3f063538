package schema

// Snapshot is the persisted-state contract of the file map index: the
// absolute root directory plus the full file map keyed by canonical path.
// It is produced by a crawler (or exported from a live index) and fed back
// into index construction by an external loader.
type Snapshot struct {
	RootDir string                  `json:"rootDir"`
	Files   map[string]FileMetadata `json:"files"`
}
