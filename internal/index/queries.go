package index

import "github.com/packsmith/filemap/internal/schema"

// Exists reports whether a path is known to the index. Absence is never an
// error.
func (fm *FileMap) Exists(path string) bool {
	_, ok := fm.lookup(path)

	return ok
}

// ModuleName returns the declared module name of a known path.
func (fm *FileMap) ModuleName(path string) (string, bool) {
	meta, ok := fm.lookup(path)
	if !ok {
		return "", false
	}

	return meta.ID, true
}

// Size returns the byte size of a known path.
func (fm *FileMap) Size(path string) (uint64, bool) {
	meta, ok := fm.lookup(path)
	if !ok {
		return 0, false
	}

	return meta.Size, true
}

// SHA1 returns the hex-encoded content hash of a known path.
func (fm *FileMap) SHA1(path string) (string, bool) {
	meta, ok := fm.lookup(path)
	if !ok {
		return "", false
	}

	return meta.SHA1, true
}

// Dependencies returns the dependency specifiers of a known path in stored
// order. A known path without a dependency field yields a non-nil empty
// slice; an unknown path yields nil and false. The distinction is part of
// the contract and relied upon by resolvers.
func (fm *FileMap) Dependencies(path string) ([]string, bool) {
	meta, ok := fm.lookup(path)
	if !ok {
		return nil, false
	}

	return meta.DependencyList(), true
}

// LinkStats returns the link-aware stat view of a known path.
//
// A found record without a modification time means the upstream supplier
// broke its contract; that is surfaced as a panic rather than a silent
// default, since continuing would propagate a corrupted view of the tree.
func (fm *FileMap) LinkStats(path string) (schema.FileStats, bool) {
	meta, ok := fm.lookup(path)
	if !ok {
		return schema.FileStats{}, false
	}

	invariant(meta.Mtime != 0, "record for %q carries no modified time", path)

	fileType := schema.FileTypeRegular
	if meta.IsSymlink {
		fileType = schema.FileTypeSymlink
	}

	return schema.FileStats{
		FileType:     fileType,
		ModifiedTime: meta.Mtime,
	}, true
}

// RealPath always fails with [ErrRealPathUnsupported].
func (fm *FileMap) RealPath(path string) (string, error) {
	return "", ErrRealPathUnsupported
}
