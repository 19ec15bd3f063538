package crawl

import (
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/packsmith/filemap/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	millisPerSecond = 1000
	nanosPerMilli   = 1_000_000
)

// sourceExtensions are the file extensions subjected to dependency and
// module name extraction.
var sourceExtensions = map[string]bool{ //nolint:gochecknoglobals
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
}

// getMetadata builds the [schema.FileMetadata] record for a single path. It
// returns nil without error for entries that are neither regular files nor
// symbolic links.
func (c *Handler) getMetadata(path string, opts Options) (*schema.FileMetadata, error) {
	var stat unix.Stat_t

	if err := c.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("failed to lstat: %w", err)
	}

	meta := &schema.FileMetadata{
		Mtime: stat.Mtim.Sec*millisPerSecond + stat.Mtim.Nsec/nanosPerMilli,
		Size:  uint64(stat.Size),
	}

	switch stat.Mode & unix.S_IFMT {
	case unix.S_IFLNK:
		meta.IsSymlink = true

		target, err := c.osHandler.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read symlink: %w", err)
		}
		meta.SymlinkTo = target

		return meta, nil

	case unix.S_IFREG:
		// Handled below.

	default:
		return nil, nil
	}

	if !opts.ComputeSHA1 && !opts.ExtractDependencies {
		return meta, nil
	}

	data, err := c.osHandler.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if opts.ComputeSHA1 {
		sum := sha1.Sum(data) //nolint:gosec
		meta.SHA1 = hex.EncodeToString(sum[:])
	}

	if opts.ExtractDependencies && sourceExtensions[filepath.Ext(path)] {
		meta.ID = extractModuleName(data)
		meta.Dependencies = schema.JoinDependencies(extractDependencies(data))
	}

	return meta, nil
}
