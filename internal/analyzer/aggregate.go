package analyzer

import (
	"context"
	"os"
	"sync"

	"modscope/internal/config"
	"modscope/internal/extract"
	"modscope/internal/logging"
	"modscope/internal/metrics"
	"modscope/internal/paths"
	"modscope/internal/scanner"
)

// Warning records a per-file degradation. Failures at this granularity
// never abort the run; the file contributes zero facts instead.
type Warning struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// FileFacts holds everything one file contributes to its module
type FileFacts struct {
	Path      string
	Module    string
	Imports   map[string]bool
	Exports   map[string]bool
	CodeLines int
	Warning   *Warning
}

// Aggregator groups per-file facts into module records
type Aggregator struct {
	cfg       config.ScanConfig
	prefix    string
	extractor extract.SourceExtractor
	logger    *logging.Logger
}

// NewAggregator creates an aggregator for one run
func NewAggregator(cfg config.ScanConfig, prefix string, extractor extract.SourceExtractor, logger *logging.Logger) *Aggregator {
	return &Aggregator{
		cfg:       cfg,
		prefix:    prefix,
		extractor: extractor,
		logger:    logger,
	}
}

// Aggregate builds the module map from candidate files. Test files are
// skipped entirely. With more than one worker, extraction runs in
// parallel; the fold into the module map stays on a single goroutine, so
// there is exactly one writer.
func (a *Aggregator) Aggregate(ctx context.Context, repoRoot string, files []string) (map[string]Module, []Warning) {
	candidates := make([]string, 0, len(files))
	for _, f := range files {
		if scanner.IsTestFile(f) {
			continue
		}
		candidates = append(candidates, f)
	}

	modules := make(map[string]Module)
	var warnings []Warning

	fold := func(facts FileFacts) {
		if facts.Warning != nil {
			warnings = append(warnings, *facts.Warning)
		}
		if facts.Module == "" {
			return // skipped file, contributes nothing
		}
		mod, ok := modules[facts.Module]
		if !ok {
			mod = NewModule(facts.Module)
		}
		modules[facts.Module] = merge(mod, facts, a.prefix)
	}

	if a.cfg.Workers <= 1 {
		for _, f := range candidates {
			if ctx.Err() != nil {
				break
			}
			fold(a.extractFacts(repoRoot, f))
		}
		return modules, warnings
	}

	jobs := make(chan string)
	results := make(chan FileFacts)

	var wg sync.WaitGroup
	for i := 0; i < a.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				results <- a.extractFacts(repoRoot, f)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, f := range candidates {
			select {
			case jobs <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for facts := range results {
		fold(facts)
	}

	return modules, warnings
}

// extractFacts reads one file and runs metrics, import, and export
// extraction on its content. The file is read once and released before
// the next is opened.
func (a *Aggregator) extractFacts(repoRoot, relPath string) FileFacts {
	absPath := paths.JoinRepoPath(repoRoot, relPath)

	if a.cfg.MaxFileSizeBytes > 0 {
		if info, err := os.Stat(absPath); err == nil && info.Size() > int64(a.cfg.MaxFileSizeBytes) {
			a.logger.Debug("Skipping file: too large", map[string]interface{}{
				"file": relPath,
				"size": info.Size(),
			})
			return FileFacts{Path: relPath}
		}
	}

	moduleName := ModuleNameForFile(relPath)

	data, err := os.ReadFile(absPath)
	if err != nil {
		a.logger.Warn("Failed to read file", map[string]interface{}{
			"file":  relPath,
			"error": err.Error(),
		})
		return FileFacts{
			Path:   relPath,
			Module: moduleName,
			Warning: &Warning{
				File:    relPath,
				Stage:   "read",
				Message: err.Error(),
			},
		}
	}

	content := string(data)
	return FileFacts{
		Path:      relPath,
		Module:    moduleName,
		Imports:   a.extractor.ExtractImports(content),
		Exports:   a.extractor.ExtractExports(content),
		CodeLines: metrics.Classify(content).Code,
	}
}
