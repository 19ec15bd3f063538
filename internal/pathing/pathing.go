// Package pathing provides the path computations backing the file map's
// canonical keys: absolute-path detection, fast and general relative-path
// computation against a root directory, resolution of keys back to absolute
// paths and portable separator handling.
package pathing

import (
	"fmt"
	"path/filepath"
	"strings"
)

// IsAbsolute reports whether a path is absolute on the host platform.
func IsAbsolute(path string) bool {
	return filepath.IsAbs(path)
}

// RelFast strips the root directory prefix off an absolute path, assuming the
// path already lives under root. It reports false when the assumption does
// not hold and the general [Rel] computation is needed instead.
func RelFast(root, abs string) (string, bool) {
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	rel, found := strings.CutPrefix(abs, prefix)
	if !found || rel == "" {
		return "", false
	}

	return rel, true
}

// Rel computes the path of abs relative to root in the general case. The
// result may contain parent-directory segments when abs lies outside root;
// such keys are permitted and denote files logically outside the tree.
func Rel(root, abs string) (string, error) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("(pathing-rel) failed to rel: %w", err)
	}

	return rel, nil
}

// Resolve joins a canonical key back onto the root directory, yielding an
// absolute path. An already absolute input is cleaned and returned as-is.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(root, path)
}

// Normalize resolves "." and ".." segments and separator form of a relative
// path without consulting any root directory.
func Normalize(path string) string {
	return filepath.Clean(filepath.FromSlash(path))
}

// ToPortable rewrites all host separators of a path to the forward-slash
// form, as required by separator-agnostic pattern matching.
func ToPortable(path string) string {
	return filepath.ToSlash(path)
}
