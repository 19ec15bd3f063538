package schema

import (
	"iter"
	"regexp"
)

// MutableFileSystem describes the capability surface of the file map index.
// Other components of the resolution pipeline depend on this interface and
// never on the concrete index implementation.
//
// All mutation calls must be serialized by the caller, and no iteration-based
// query may run while a mutation batch is being applied; membership and
// traversal order under concurrent mutation are undefined.
type MutableFileSystem interface {
	// AddOrModify inserts or overwrites the record for a path. The path may
	// be absolute or root-relative and is normalized internally.
	AddOrModify(path string, meta FileMetadata)

	// BulkAddOrModify inserts or overwrites many records at once. Keys must
	// already be canonical root-relative paths; they are deliberately not
	// re-normalized, as bulk callers are performance-sensitive and already
	// hold canonical keys.
	BulkAddOrModify(files map[string]FileMetadata)

	// Remove deletes the record for a path, returning the prior record and
	// whether one existed. This is the only way to observe a record
	// immediately before its deletion.
	Remove(path string) (FileMetadata, bool)

	// Exists reports whether a path is known to the index.
	Exists(path string) bool

	// ModuleName returns the declared module name of a known path.
	ModuleName(path string) (string, bool)

	// Size returns the byte size of a known path.
	Size(path string) (uint64, bool)

	// SHA1 returns the hex-encoded content hash of a known path.
	SHA1(path string) (string, bool)

	// Dependencies returns the dependency specifiers of a known path in
	// stored order. For a known path without a dependency field the slice is
	// non-nil and empty; for an unknown path it is nil and the boolean is
	// false.
	Dependencies(path string) ([]string, bool)

	// LinkStats returns the link-aware stat view of a known path. It panics
	// when a found record carries no modification time, as that indicates
	// the upstream data supply broke its contract.
	LinkStats(path string) (FileStats, bool)

	// Files yields every canonical key in a single lazy pass. The sequence
	// is not restartable; range over a fresh call for another pass.
	Files() iter.Seq[string]

	// AbsoluteFiles yields every known path resolved against the root
	// directory, with the same traversal semantics as Files.
	AbsoluteFiles() iter.Seq[string]

	// AllFiles returns every known path resolved against the root directory.
	AllFiles() []string

	// MatchFiles returns the absolute paths whose string form matches the
	// given expression.
	MatchFiles(re *regexp.Regexp) []string

	// MatchFilesInContext returns the absolute paths under contextRoot whose
	// "./"-prefixed, slash-normalized form relative to contextRoot matches
	// filter. With recursive unset, only direct children qualify.
	MatchFilesInContext(contextRoot string, recursive bool, filter *regexp.Regexp) []string

	// MatchFilesGlob returns the set of absolute paths matching any of the
	// given glob patterns. Subjects are taken relative to globRoot when it is
	// non-empty, absolute otherwise. The result carries no ordering.
	MatchFilesGlob(globs []string, globRoot string) (map[string]struct{}, error)

	// Snapshot returns a deep, mutation-independent copy of the file map,
	// keyed by canonical path. The root directory is not included; callers
	// already hold it.
	Snapshot() map[string]FileMetadata

	// RealPath always fails; the index does not resolve symbolic links to
	// real filesystem paths and callers must not depend on it.
	RealPath(path string) (string, error)
}
