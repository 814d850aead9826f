// Package graph derives the dependency structure between modules. Only a
// dependents count is retained per module; edge identity is not needed by
// the scorer.
package graph

import (
	"strings"
)

// RootName is the sentinel module name for files living at the project root
const RootName = "root"

// RefName converts an internal import path into a module-name reference by
// stripping the project prefix. An import of the project root itself maps
// to the root sentinel. This is a textual resolution: import paths that
// include path segments dropped during module naming (for example the
// private "internal" marker) will not match any module and simply count
// toward a name that does not exist.
func RefName(importPath, prefix string) string {
	ref := strings.TrimPrefix(importPath, prefix)
	ref = strings.TrimPrefix(ref, "/")
	if ref == "" {
		return RootName
	}
	return ref
}

// DependentsCount returns, per referenced module name, the number of
// distinct other modules whose internal imports resolve to it. Each
// referencing module counts once per referenced name regardless of how
// many of its imports resolve there, and self-references are ignored.
func DependentsCount(internalImports map[string]map[string]bool, prefix string) map[string]int {
	counts := make(map[string]int)

	for name, imports := range internalImports {
		seen := make(map[string]bool)
		for imp := range imports {
			ref := RefName(imp, prefix)
			if ref == name || seen[ref] {
				continue
			}
			seen[ref] = true
			counts[ref]++
		}
	}

	return counts
}
