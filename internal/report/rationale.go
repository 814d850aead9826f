package report

import (
	"strings"

	"modscope/internal/analyzer"
)

// Rationale labels shown next to learning path entries
const (
	reasonCore     = "core module"
	reasonRichAPI  = "rich interface"
	reasonSimple   = "simple dependencies"
	reasonDataDefs = "data definitions"
	reasonBasic    = "basic module"
)

// Thresholds for rationale labels
const (
	coreScoreThreshold     = 20
	richExportThreshold    = 5
	simpleImportsThreshold = 3
)

// dataDefKeywords mark modules carrying type definitions
var dataDefKeywords = []string{"api", "types"}

// rationale derives a short human label for why a module appears in the
// learning path. At most two reasons are shown.
func rationale(mod analyzer.Module, score float64) string {
	var reasons []string

	if score > coreScoreThreshold {
		reasons = append(reasons, reasonCore)
	}
	if len(mod.Exports) > richExportThreshold {
		reasons = append(reasons, reasonRichAPI)
	}
	if len(mod.InternalImports) <= simpleImportsThreshold {
		reasons = append(reasons, reasonSimple)
	}
	if containsAny(mod.Name, dataDefKeywords) {
		reasons = append(reasons, reasonDataDefs)
	}

	if len(reasons) == 0 {
		return reasonBasic
	}
	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	return strings.Join(reasons, ", ")
}

// containsAny matches case-sensitively. Unlike the scoring keywords, the
// label follows the module name exactly as written.
func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
