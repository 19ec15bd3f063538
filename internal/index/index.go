// Package index implements the in-memory file map index over a snapshot of a
// project's file tree. It answers the structural and content queries of the
// module resolution pipeline without ever touching disk; discovery, hashing
// and dependency extraction are supplied externally as [schema.FileMetadata]
// records and change batches.
//
// The index holds exclusive ownership of its root directory and file map.
// Callers must serialize mutation batches and must not mutate the map while
// an iteration-based query is in progress.
package index

import (
	"fmt"

	"github.com/packsmith/filemap/internal/globbing"
	"github.com/packsmith/filemap/internal/pathing"
	"github.com/packsmith/filemap/internal/schema"
)

// FileMap is the concrete file map index. It implements
// [schema.MutableFileSystem], which is what other pipeline components should
// depend on.
type FileMap struct {
	rootDir string
	files   map[string]schema.FileMetadata
	globs   *globbing.Compiler
}

var _ schema.MutableFileSystem = (*FileMap)(nil)

// NewFileMap establishes a [FileMap] over an absolute root directory and an
// initial file map keyed by canonical path. The given map is copied; the
// index never aliases caller-held state.
func NewFileMap(rootDir string, files map[string]schema.FileMetadata) (*FileMap, error) {
	if !pathing.IsAbsolute(rootDir) {
		return nil, fmt.Errorf("(index-new) %w: %s", pathing.ErrRootIsRelative, rootDir)
	}

	globs, err := globbing.NewCompiler(0)
	if err != nil {
		return nil, fmt.Errorf("(index-new) %w", err)
	}

	fm := &FileMap{
		rootDir: rootDir,
		files:   make(map[string]schema.FileMetadata, len(files)),
		globs:   globs,
	}

	for key, meta := range files {
		fm.files[key] = meta
	}

	return fm, nil
}

// FromSnapshot establishes a [FileMap] from a persisted [schema.Snapshot].
func FromSnapshot(snap schema.Snapshot) (*FileMap, error) {
	return NewFileMap(snap.RootDir, snap.Files)
}

// RootDir returns the absolute root directory all canonical keys are
// computed against. It is fixed at construction.
func (fm *FileMap) RootDir() string {
	return fm.rootDir
}

// normalize converts any absolute-or-relative input path into the canonical
// root-relative key used by the file map.
func (fm *FileMap) normalize(path string) string {
	if !pathing.IsAbsolute(path) {
		return pathing.Normalize(path)
	}

	if rel, ok := pathing.RelFast(fm.rootDir, path); ok {
		return rel
	}

	rel, err := pathing.Rel(fm.rootDir, path)
	if err != nil {
		// Unreachable for two absolute paths on the same volume; keeping
		// the cleaned input preserves the miss instead of masking it.
		return pathing.Normalize(path)
	}

	return rel
}

// lookup fetches the record for a path. It first tries the input verbatim as
// a map key (the hot-path case of a caller already holding a canonical key)
// and pays for normalization only on a miss.
func (fm *FileMap) lookup(path string) (schema.FileMetadata, bool) {
	if meta, ok := fm.files[path]; ok {
		return meta, true
	}

	meta, ok := fm.files[fm.normalize(path)]

	return meta, ok
}

// invariant panics with a descriptive message when a stored record violates
// the upstream data-supply contract. It is reserved for index corruption and
// never used for ordinary caller mistakes.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic("index invariant violated: " + fmt.Sprintf(format, args...))
	}
}
