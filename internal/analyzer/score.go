package analyzer

import (
	"strings"

	"modscope/internal/graph"
)

// Scoring constants. These are frozen: the ranking has no ground truth, so
// reproducibility across runs and versions matters more than tuning.
const (
	dependentWeight = 10
	exportWeight    = 2

	sizeBonusNarrow = 5 // 100..1000 code lines
	sizeBonusWide   = 3 // 50..2000 code lines
	keywordBonus    = 15
	keywordPenalty  = 5
)

// bonusKeywords mark architecturally central modules
var bonusKeywords = []string{"api", "types", "core", "common"}

// penaltyKeywords mark entry points and scaffolding
var penaltyKeywords = []string{"cmd", "test", "example"}

// nameContainsAny does a case-insensitive substring check against a
// keyword list. A single match triggers; matches do not stack.
func nameContainsAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func sizeBonus(lines int) float64 {
	switch {
	case lines >= 100 && lines <= 1000:
		return sizeBonusNarrow
	case lines >= 50 && lines <= 2000:
		return sizeBonusWide
	default:
		return 0
	}
}

// Scores computes the importance score for every module. The score is
// monotone in each input: dependents, exported identifiers, a size bonus
// for moderately sized modules, and name-based bonus/penalty keywords.
// Bonus and penalty apply independently; a module can receive both.
func Scores(modules map[string]Module, dependents map[string]int) map[string]float64 {
	scores := make(map[string]float64, len(modules))

	for name, mod := range modules {
		score := float64(dependents[name]*dependentWeight + len(mod.Exports)*exportWeight)
		score += sizeBonus(mod.CodeLines)

		if nameContainsAny(name, bonusKeywords) {
			score += keywordBonus
		}
		if nameContainsAny(name, penaltyKeywords) {
			score -= keywordPenalty
		}

		scores[name] = score
	}

	return scores
}

// Dependents derives the dependents count for every module from the
// aggregated internal import sets.
func Dependents(modules map[string]Module, prefix string) map[string]int {
	imports := make(map[string]map[string]bool, len(modules))
	for name, mod := range modules {
		imports[name] = mod.InternalImports
	}
	return graph.DependentsCount(imports, prefix)
}
