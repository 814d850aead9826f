// Package report assembles an analysis result into the presentation-ready
// report structure: project summary, importance ranking, learning path
// with rationale, and external dependency usage.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"modscope/internal/analyzer"
	"modscope/internal/config"
	"modscope/internal/version"
)

// Report is the full, ordered report for one run
type Report struct {
	ID          string `json:"id" yaml:"id"`
	ToolVersion string `json:"toolVersion" yaml:"toolVersion"`
	GeneratedAt string `json:"generatedAt" yaml:"generatedAt"`
	DurationMs  int64  `json:"durationMs" yaml:"durationMs"`

	Root    string  `json:"root" yaml:"root"`
	Prefix  string  `json:"prefix" yaml:"prefix"`
	Summary Summary `json:"summary" yaml:"summary"`

	Modules              []ModuleRank       `json:"modules" yaml:"modules"`
	LearningPath         []PathEntry        `json:"learningPath" yaml:"learningPath"`
	ExternalDependencies []DependencyUsage  `json:"externalDependencies" yaml:"externalDependencies"`
	Warnings             []analyzer.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Summary holds project-wide totals
type Summary struct {
	ModuleCount    int `json:"moduleCount" yaml:"moduleCount"`
	FileCount      int `json:"fileCount" yaml:"fileCount"`
	TotalCodeLines int `json:"totalCodeLines" yaml:"totalCodeLines"`
}

// ModuleRank is one row of the importance ranking table
type ModuleRank struct {
	Name            string  `json:"name" yaml:"name"`
	Score           float64 `json:"score" yaml:"score"`
	CodeLines       int     `json:"codeLines" yaml:"codeLines"`
	Exports         int     `json:"exports" yaml:"exports"`
	InternalImports int     `json:"internalImports" yaml:"internalImports"`
	Dependents      int     `json:"dependents" yaml:"dependents"`
}

// PathEntry is one recommendation in the learning path
type PathEntry struct {
	Rank      int     `json:"rank" yaml:"rank"`
	Name      string  `json:"name" yaml:"name"`
	FileCount int     `json:"fileCount" yaml:"fileCount"`
	CodeLines int     `json:"codeLines" yaml:"codeLines"`
	Exports   int     `json:"exports" yaml:"exports"`
	Score     float64 `json:"score" yaml:"score"`
	Rationale string  `json:"rationale" yaml:"rationale"`
}

// DependencyUsage is one row of the external dependency table
type DependencyUsage struct {
	Path    string `json:"path" yaml:"path"`
	Modules int    `json:"modules" yaml:"modules"`
}

// Build assembles a Report from an analysis result, applying the display
// limits from configuration. The result itself is not modified.
func Build(result *analyzer.Result, cfg config.ReportConfig) *Report {
	r := &Report{
		ID:          uuid.NewString(),
		ToolVersion: version.Info(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		DurationMs:  result.Duration.Milliseconds(),
		Root:        result.Root,
		Prefix:      result.Prefix,
		Summary: Summary{
			ModuleCount:    len(result.Modules),
			FileCount:      result.FilesScanned,
			TotalCodeLines: result.TotalCodeLines(),
		},
		Warnings: result.Warnings,
	}

	r.Modules = rankModules(result, cfg.TopModules)
	r.LearningPath = pathEntries(result, cfg.PathDisplay)
	r.ExternalDependencies = rankDependencies(result.ExternalUsage, cfg.TopDependencies)

	return r
}

// rankModules orders modules by score descending, name ascending on ties
func rankModules(result *analyzer.Result, limit int) []ModuleRank {
	names := make([]string, 0, len(result.Modules))
	for name := range result.Modules {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := result.Scores[names[i]], result.Scores[names[j]]
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})

	if len(names) > limit {
		names = names[:limit]
	}

	ranks := make([]ModuleRank, 0, len(names))
	for _, name := range names {
		mod := result.Modules[name]
		ranks = append(ranks, ModuleRank{
			Name:            name,
			Score:           result.Scores[name],
			CodeLines:       mod.CodeLines,
			Exports:         len(mod.Exports),
			InternalImports: len(mod.InternalImports),
			Dependents:      result.Dependents[name],
		})
	}
	return ranks
}

// pathEntries converts the learning path into display entries with a short
// derived rationale per module.
func pathEntries(result *analyzer.Result, limit int) []PathEntry {
	path := result.LearningPath
	if len(path) > limit {
		path = path[:limit]
	}

	entries := make([]PathEntry, 0, len(path))
	for i, name := range path {
		mod := result.Modules[name]
		entries = append(entries, PathEntry{
			Rank:      i + 1,
			Name:      name,
			FileCount: mod.FileCount,
			CodeLines: mod.CodeLines,
			Exports:   len(mod.Exports),
			Score:     result.Scores[name],
			Rationale: rationale(mod, result.Scores[name]),
		})
	}
	return entries
}

// rankDependencies orders external imports by distinct-module usage
// descending, path ascending on ties
func rankDependencies(usage map[string]int, limit int) []DependencyUsage {
	deps := make([]DependencyUsage, 0, len(usage))
	for path, count := range usage {
		deps = append(deps, DependencyUsage{Path: path, Modules: count})
	}
	sort.Slice(deps, func(i, j int) bool {
		if deps[i].Modules != deps[j].Modules {
			return deps[i].Modules > deps[j].Modules
		}
		return deps[i].Path < deps[j].Path
	})

	if len(deps) > limit {
		deps = deps[:limit]
	}
	return deps
}
