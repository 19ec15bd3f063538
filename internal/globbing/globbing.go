// Package globbing compiles sets of shell-style glob patterns into single
// predicates over slash-normalized subject paths. Compiled pattern sets are
// memoized, as resolvers tend to re-run identical glob queries for every file
// of a build.
package globbing

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 64

// Matcher is a compiled predicate reporting whether any pattern of its glob
// set matches a slash-normalized subject path.
type Matcher func(subject string) bool

// Compiler compiles glob pattern sets into [Matcher] predicates, keeping a
// bounded cache of previously compiled sets.
type Compiler struct {
	cache *lru.Cache[string, []glob.Glob]
}

// NewCompiler returns a [Compiler] with a bounded compilation cache. A
// non-positive size falls back to the default.
func NewCompiler(size int) (*Compiler, error) {
	if size <= 0 {
		size = defaultCacheSize
	}

	cache, err := lru.New[string, []glob.Glob](size)
	if err != nil {
		return nil, fmt.Errorf("(globbing-new) failed to establish cache: %w", err)
	}

	return &Compiler{cache: cache}, nil
}

// Compile compiles a set of glob patterns into a single [Matcher]. Patterns
// are separator-aware, with "/" as the only separator; subjects must be
// slash-normalized before matching. A malformed pattern fails the whole call
// and is propagated to the caller unchanged in meaning.
func (c *Compiler) Compile(globs []string) (Matcher, error) {
	key := strings.Join(globs, "\x00")

	compiled, ok := c.cache.Get(key)
	if !ok {
		compiled = make([]glob.Glob, 0, len(globs))
		for _, pattern := range globs {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return nil, fmt.Errorf("(globbing-compile) failed to compile %q: %w", pattern, err)
			}
			compiled = append(compiled, g)
		}
		c.cache.Add(key, compiled)
	}

	return func(subject string) bool {
		for _, g := range compiled {
			if g.Match(subject) {
				return true
			}
		}

		return false
	}, nil
}
