package schema

import "strings"

// FileType classifies a file map entry for [FileStats] consumers.
type FileType string

const (
	// FileTypeRegular marks an entry backed by a regular file.
	FileTypeRegular FileType = "f"

	// FileTypeSymlink marks an entry backed by a symbolic link.
	FileTypeSymlink FileType = "l"
)

// FileMetadata is the per-file record held by the file map index. Records are
// produced by external suppliers (a crawler, a change-detection pass) and the
// index itself never fills or amends any field.
//
// Mtime must be set whenever the record represents a regular file or a
// symbolic link; a zero Mtime on a stored record means the supplier broke
// its contract.
type FileMetadata struct {
	// ID is the declared (Haste-style) module name, empty if none.
	ID string `json:"id,omitempty"`

	// Mtime is the last modification time in epoch milliseconds.
	Mtime int64 `json:"mtime"`

	// Size is the byte size of the file contents.
	Size uint64 `json:"size"`

	// Dependencies holds the dependency module specifiers joined with
	// [DependencyDelimiter]; empty means no dependency field was supplied.
	Dependencies string `json:"dependencies,omitempty"`

	// SHA1 is the hex-encoded content hash, empty if not computed.
	SHA1 string `json:"sha1,omitempty"`

	// IsSymlink reports whether the entry is a symbolic link.
	IsSymlink bool `json:"symlink,omitempty"`

	// SymlinkTo is the raw link target, set only for symbolic links.
	SymlinkTo string `json:"symlinkTo,omitempty"`
}

// DependencyList returns the dependency specifiers of a [FileMetadata] in
// their stored order. The returned slice is non-nil (but empty) when no
// dependency field was supplied.
func (m FileMetadata) DependencyList() []string {
	if m.Dependencies == "" {
		return []string{}
	}

	return strings.Split(m.Dependencies, DependencyDelimiter)
}

// JoinDependencies encodes dependency specifiers into the stored form of
// [FileMetadata.Dependencies].
func JoinDependencies(specifiers []string) string {
	return strings.Join(specifiers, DependencyDelimiter)
}

// FileStats is the link-aware stat view of a file map entry.
type FileStats struct {
	FileType     FileType
	ModifiedTime int64
}
