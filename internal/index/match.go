package index

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/packsmith/filemap/internal/pathing"
)

// MatchFiles returns the absolute paths of all known files matching the
// given expression, in traversal order. Paths are unique by construction, so
// no deduplication is performed.
func (fm *FileMap) MatchFiles(re *regexp.Regexp) []string {
	var matched []string

	for abs := range fm.AbsoluteFiles() {
		if re.MatchString(abs) {
			matched = append(matched, abs)
		}
	}

	return matched
}

// MatchFilesInContext returns the absolute paths of all known files under
// contextRoot whose filter subject matches, emulating a directory-scoped
// module context query.
//
// The subject is the path relative to contextRoot, prefixed with "./" and
// rewritten to forward slashes, so the same filter behaves identically
// regardless of the host separator convention. With recursive unset, paths
// below a further directory level are discarded.
func (fm *FileMap) MatchFilesInContext(contextRoot string, recursive bool, filter *regexp.Regexp) []string {
	var matched []string

	parentMarker := ".." + string(filepath.Separator)

	for abs := range fm.AbsoluteFiles() {
		rel, err := pathing.Rel(contextRoot, abs)
		if err != nil {
			continue
		}
		if rel == ".." || strings.HasPrefix(rel, parentMarker) {
			continue
		}
		if !recursive && strings.ContainsRune(rel, filepath.Separator) {
			continue
		}

		if filter.MatchString("./" + pathing.ToPortable(rel)) {
			matched = append(matched, abs)
		}
	}

	return matched
}

// MatchFilesGlob returns the set of absolute paths of all known files
// matching any of the given glob patterns. Subjects are taken relative to
// globRoot when it is non-empty, absolute otherwise, and rewritten to the
// portable slash form before matching. The glob set is compiled once per
// call; a malformed pattern is propagated to the caller.
//
// The result is an unordered set.
func (fm *FileMap) MatchFilesGlob(globs []string, globRoot string) (map[string]struct{}, error) {
	match, err := fm.globs.Compile(globs)
	if err != nil {
		return nil, err
	}

	matched := make(map[string]struct{})

	for abs := range fm.AbsoluteFiles() {
		subject := abs
		if globRoot != "" {
			rel, err := pathing.Rel(globRoot, abs)
			if err != nil {
				continue
			}
			subject = rel
		}

		if match(pathing.ToPortable(subject)) {
			matched[abs] = struct{}{}
		}
	}

	return matched, nil
}
