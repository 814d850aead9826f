// Package analyzer reconstructs a directory-based module decomposition
// from a scanned source tree and derives importance scores and a
// recommended learning path over it. Everything is built fresh per run and
// held only in memory; there is no cross-run state.
package analyzer

import (
	"context"
	"time"

	"modscope/internal/config"
	"modscope/internal/errors"
	"modscope/internal/extract"
	"modscope/internal/logging"
	"modscope/internal/manifest"
	"modscope/internal/scanner"
)

// Result is the complete output of one analysis run. The module map, the
// score map, the learning path, and the external usage tally are the
// read-only surfaces exposed to report rendering.
type Result struct {
	Root          string
	Prefix        string
	Modules       map[string]Module
	Scores        map[string]float64
	Dependents    map[string]int
	LearningPath  []string
	ExternalUsage map[string]int
	Warnings      []Warning
	FilesScanned  int
	Duration      time.Duration
}

// TotalCodeLines sums code lines across all modules
func (r *Result) TotalCodeLines() int {
	total := 0
	for _, mod := range r.Modules {
		total += mod.CodeLines
	}
	return total
}

// Analyzer runs the full scan-aggregate-score pipeline
type Analyzer struct {
	cfg       *config.Config
	logger    *logging.Logger
	extractor extract.SourceExtractor
}

// New creates an Analyzer. The configuration is immutable for the run.
func New(cfg *config.Config, logger *logging.Logger) *Analyzer {
	return &Analyzer{
		cfg:       cfg,
		logger:    logger,
		extractor: extract.NewPatternExtractor(),
	}
}

// Run executes one analysis over cfg.RepoRoot. Per-file failures degrade
// to warnings in the result; the only terminal condition is finding zero
// analyzable source files.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	root := a.cfg.RepoRoot

	prefix := manifest.Resolve(root, a.logger)
	a.logger.Debug("Resolved project prefix", map[string]interface{}{
		"prefix": prefix,
	})

	files, err := scanner.New(a.cfg.Scan, a.logger).Scan(root)
	if err != nil {
		return nil, errors.New(errors.ScanFailed, "failed to walk project tree", err)
	}

	analyzable := 0
	for _, f := range files {
		if !scanner.IsTestFile(f) {
			analyzable++
		}
	}
	if analyzable == 0 {
		return nil, errors.New(errors.NoSourceFiles, "no source files found under "+root, nil)
	}

	agg := NewAggregator(a.cfg.Scan, prefix, a.extractor, a.logger)
	modules, warnings := agg.Aggregate(ctx, root, files)
	if err := ctx.Err(); err != nil {
		return nil, errors.New(errors.InternalError, "analysis cancelled", err)
	}

	dependents := Dependents(modules, prefix)
	scores := Scores(modules, dependents)

	result := &Result{
		Root:          root,
		Prefix:        prefix,
		Modules:       modules,
		Scores:        scores,
		Dependents:    dependents,
		LearningPath:  BuildLearningPath(modules, scores),
		ExternalUsage: externalUsage(modules),
		Warnings:      warnings,
		FilesScanned:  analyzable,
		Duration:      time.Since(start),
	}

	a.logger.Info("Analysis completed", map[string]interface{}{
		"modules":  len(modules),
		"files":    analyzable,
		"warnings": len(warnings),
		"duration": result.Duration.Milliseconds(),
	})

	return result, nil
}

// externalUsage counts, per external import path, how many distinct
// modules use it. Set semantics on ExternalImports make this a per-module
// count, not a per-file one.
func externalUsage(modules map[string]Module) map[string]int {
	usage := make(map[string]int)
	for _, mod := range modules {
		for imp := range mod.ExternalImports {
			usage[imp]++
		}
	}
	return usage
}
