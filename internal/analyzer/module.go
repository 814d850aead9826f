package analyzer

import (
	"path"
	"strings"

	"modscope/internal/graph"
	"modscope/internal/manifest"
)

// privateSegment is dropped from directory paths when deriving module
// names, so internal/foo and foo aggregate under the same name.
const privateSegment = "internal"

// Module is the unit of analysis: one record per normalized source
// directory, built up by folding per-file facts.
type Module struct {
	// Name is the normalized directory-derived module name
	Name string `json:"name"`

	// InternalImports are import paths starting with the project prefix
	InternalImports map[string]bool `json:"internalImports"`

	// ExternalImports are all remaining import paths
	ExternalImports map[string]bool `json:"externalImports"`

	// Exports are exported top-level identifiers from non-test files
	Exports map[string]bool `json:"exports"`

	// FileCount is the number of files contributing to this module
	FileCount int `json:"fileCount"`

	// CodeLines is the sum of non-blank, non-comment lines
	CodeLines int `json:"codeLines"`
}

// NewModule creates an empty module record
func NewModule(name string) Module {
	return Module{
		Name:            name,
		InternalImports: make(map[string]bool),
		ExternalImports: make(map[string]bool),
		Exports:         make(map[string]bool),
	}
}

// ModuleNameForFile derives the module name from a repo-relative file path.
// Trivial segments (".", "..", the private marker) are dropped; files with
// no remaining segments map to the root sentinel.
func ModuleNameForFile(relPath string) string {
	dir := path.Dir(relPath)

	var kept []string
	for _, seg := range strings.Split(dir, "/") {
		switch seg {
		case ".", "..", privateSegment, "":
			continue
		}
		kept = append(kept, seg)
	}

	if len(kept) == 0 {
		return graph.RootName
	}
	return strings.Join(kept, "/")
}

// merge folds one file's facts into a module record and returns the
// updated value. Every operation is a set union or a sum, so merge order
// never affects the final record; parallel aggregation relies on this.
func merge(mod Module, facts FileFacts, prefix string) Module {
	for imp := range facts.Imports {
		if manifest.IsInternal(imp, prefix) {
			mod.InternalImports[imp] = true
		} else {
			mod.ExternalImports[imp] = true
		}
	}
	for name := range facts.Exports {
		mod.Exports[name] = true
	}
	mod.FileCount++
	mod.CodeLines += facts.CodeLines
	return mod
}
