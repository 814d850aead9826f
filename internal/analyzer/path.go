package analyzer

import (
	"sort"
)

// Learning path constants, frozen like the scoring constants.
const (
	// maxPathLength caps the recommendation list
	maxPathLength = 15
	// minPathCodeLines excludes trivially small modules
	minPathCodeLines = 20
)

// pathSkipKeywords exclude scaffolding from recommendations
var pathSkipKeywords = []string{"test", "example", "mock"}

// BuildLearningPath ranks modules by priority (score minus internal import
// count: importance rewarded, prerequisites penalized) and greedily accepts
// them into the path. Modules are pre-sorted by name ascending and the
// priority sort is stable, so equal priorities resolve alphabetically.
func BuildLearningPath(modules map[string]Module, scores map[string]float64) []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)

	priority := func(name string) float64 {
		return scores[name] - float64(len(modules[name].InternalImports))
	}
	sort.SliceStable(names, func(i, j int) bool {
		return priority(names[i]) > priority(names[j])
	})

	var path []string
	for _, name := range names {
		if len(path) >= maxPathLength {
			break
		}
		if modules[name].CodeLines <= minPathCodeLines {
			continue
		}
		if nameContainsAny(name, pathSkipKeywords) {
			continue
		}
		path = append(path, name)
	}

	return path
}
