package index

import (
	"iter"
	"maps"
	"slices"

	"github.com/packsmith/filemap/internal/pathing"
	"github.com/packsmith/filemap/internal/schema"
)

// Files yields every canonical key of the file map in a single lazy pass.
// The sequence is not restartable as the same object; range over a fresh call
// for another pass. Mutating the map during an in-progress pass is undefined.
func (fm *FileMap) Files() iter.Seq[string] {
	return maps.Keys(fm.files)
}

// AbsoluteFiles yields every known path resolved against the root directory,
// with the same traversal semantics as [FileMap.Files].
func (fm *FileMap) AbsoluteFiles() iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range fm.files {
			if !yield(pathing.Resolve(fm.rootDir, key)) {
				return
			}
		}
	}
}

// AllFiles eagerly materializes [FileMap.AbsoluteFiles].
func (fm *FileMap) AllFiles() []string {
	return slices.Collect(fm.AbsoluteFiles())
}

// Snapshot returns a deep, mutation-independent copy of the file map keyed by
// canonical path, suitable for external persistence. The root directory is
// not included; callers already hold it.
func (fm *FileMap) Snapshot() map[string]schema.FileMetadata {
	return maps.Clone(fm.files)
}
