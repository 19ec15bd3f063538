// Package crawl produces the initial file map snapshot the index is
// constructed from. It walks a root directory, records per-file metadata via
// lstat and optionally computes content hashes and dependency specifiers for
// source files. It is the upstream supplier of [schema.FileMetadata] records;
// the index itself never performs any of this I/O.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/packsmith/filemap/internal/pathing"
	"github.com/packsmith/filemap/internal/schema"
	"golang.org/x/sys/unix"
)

type osProvider interface {
	Readlink(name string) (string, error)
	ReadFile(name string) ([]byte, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

// Options configure a crawl pass.
type Options struct {
	// ComputeSHA1 hashes the contents of every regular file.
	ComputeSHA1 bool

	// ExtractDependencies scans source files for dependency specifiers and
	// a declared module name.
	ExtractDependencies bool

	// Ignore discards any absolute path it matches.
	Ignore *regexp.Regexp
}

// Handler is a crawler over previously given system providers.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a crawl [Handler] for the given providers.
func NewHandler(osOps osProvider, unixOps unixProvider) *Handler {
	return &Handler{
		osHandler:   osOps,
		unixHandler: unixOps,
	}
}

// Crawl walks rootDir and returns a [schema.Snapshot] of every regular file
// and symbolic link beneath it, keyed by canonical root-relative path.
// Unreadable entries are logged and skipped, so a partially restricted tree
// still yields a usable snapshot.
func (c *Handler) Crawl(ctx context.Context, rootDir string, opts Options) (schema.Snapshot, error) {
	if !pathing.IsAbsolute(rootDir) {
		return schema.Snapshot{}, fmt.Errorf("(crawl) %w: %s", pathing.ErrRootIsRelative, rootDir)
	}

	files := make(map[string]schema.FileMetadata)

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			slog.Warn("Skipped entry: failed walking", "err", err, "path", path)

			return nil
		}
		if d.IsDir() {
			return nil
		}
		if opts.Ignore != nil && opts.Ignore.MatchString(path) {
			return nil
		}

		meta, err := c.getMetadata(path, opts)
		if err != nil {
			slog.Warn("Skipped entry: failed reading metadata", "err", err, "path", path)

			return nil
		}
		if meta == nil {
			return nil
		}

		key, ok := pathing.RelFast(rootDir, path)
		if !ok {
			if key, err = pathing.Rel(rootDir, path); err != nil {
				slog.Warn("Skipped entry: failed establishing key", "err", err, "path", path)

				return nil
			}
		}

		files[key] = *meta

		return nil
	})
	if err != nil {
		return schema.Snapshot{}, fmt.Errorf("(crawl) failed to walk: %w", err)
	}

	return schema.Snapshot{
		RootDir: rootDir,
		Files:   files,
	}, nil
}
