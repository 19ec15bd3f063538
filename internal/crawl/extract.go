package crawl

// Source scanning is intentionally regex-based: the pipeline only needs the
// raw specifier strings, not a syntax tree.
//
//   - import defaultExport from 'specifier'  |  import 'specifier'
//   - export * from 'specifier'  |  export { a, b } from 'specifier'
//   - require('specifier')
//   - @providesModule ModuleName (inside a docblock)

import "regexp"

//nolint:gochecknoglobals
var (
	// import Foo from '...'  |  import { a } from "..."  |  import '...'
	reImport = regexp.MustCompile(`(?m)^\s*import\s+(?:[^'"]+?\s+from\s+)?['"]([^'"]+)['"]`)

	// export * from '...'  |  export { Foo, Bar } from '...'
	reExportFrom = regexp.MustCompile(`(?m)^\s*export\s+(?:\*|\{[^}]*\})\s+from\s+['"]([^'"]+)['"]`)

	// require('...')
	reRequire = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)

	// @providesModule ModuleName
	reProvidesModule = regexp.MustCompile(`@providesModule\s+([\w.\-/]+)`)
)

// extractDependencies returns every dependency specifier referenced by the
// given source, duplicates removed. Order is stable: import forms first, then
// re-exports, then require calls, each in occurrence order.
func extractDependencies(data []byte) []string {
	var specifiers []string

	seen := make(map[string]bool)

	for _, re := range []*regexp.Regexp{reImport, reExportFrom, reRequire} {
		for _, m := range re.FindAllSubmatch(data, -1) {
			specifier := string(m[1])
			if !seen[specifier] {
				seen[specifier] = true
				specifiers = append(specifiers, specifier)
			}
		}
	}

	return specifiers
}

// extractModuleName returns the declared (Haste-style) module name of the
// given source, empty if none is declared.
func extractModuleName(data []byte) string {
	if m := reProvidesModule.FindSubmatch(data); m != nil {
		return string(m[1])
	}

	return ""
}
