package index

import "github.com/packsmith/filemap/internal/schema"

// AddOrModify inserts or overwrites the record for a path. The path may be
// absolute or relative; it is normalized into its canonical key. The call
// always succeeds.
func (fm *FileMap) AddOrModify(path string, meta schema.FileMetadata) {
	fm.files[fm.normalize(path)] = meta
}

// BulkAddOrModify inserts or overwrites many records at once, silently
// overwriting any existing record per key.
//
// Keys must already be canonical root-relative paths and are deliberately not
// re-normalized: bulk mutation is the high-volume change-application path and
// its callers already hold canonical keys. Records are applied independently;
// the call makes no atomicity promise across records.
func (fm *FileMap) BulkAddOrModify(files map[string]schema.FileMetadata) {
	for key, meta := range files {
		fm.files[key] = meta
	}
}

// Remove deletes the record for a path, returning the prior record and
// whether one existed. On an unknown path the map is unchanged.
func (fm *FileMap) Remove(path string) (schema.FileMetadata, bool) {
	key := path
	meta, ok := fm.files[key]
	if !ok {
		key = fm.normalize(path)
		meta, ok = fm.files[key]
	}
	if !ok {
		return schema.FileMetadata{}, false
	}

	delete(fm.files, key)

	return meta, true
}
