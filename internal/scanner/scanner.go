// Package scanner walks a project tree and produces the candidate source
// file list for analysis.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"modscope/internal/config"
	"modscope/internal/logging"
	"modscope/internal/paths"
)

// Scanner enumerates source files under a project root
type Scanner struct {
	extensions map[string]bool
	ignoreDirs map[string]bool
	logger     *logging.Logger
}

// New creates a Scanner from scan configuration
func New(cfg config.ScanConfig, logger *logging.Logger) *Scanner {
	extensions := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		extensions[strings.ToLower(ext)] = true
	}
	ignoreDirs := make(map[string]bool, len(cfg.IgnoreDirs))
	for _, dir := range cfg.IgnoreDirs {
		ignoreDirs[dir] = true
	}
	return &Scanner{
		extensions: extensions,
		ignoreDirs: ignoreDirs,
		logger:     logger,
	}
}

// Scan walks repoRoot and returns repo-relative, forward-slash paths of all
// candidate source files, sorted for deterministic downstream iteration.
// Hidden directories and denylisted directories are pruned. Test files are
// included here; aggregation filters them with IsTestFile.
func (s *Scanner) Scan(repoRoot string) ([]string, error) {
	var files []string

	err := filepath.Walk(repoRoot, func(path string, info os.FileInfo, err error) error {
		return s.visit(repoRoot, path, info, err, &files)
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	s.logger.Debug("Scan completed", map[string]interface{}{
		"root":  repoRoot,
		"files": len(files),
	})

	return files, nil
}

// visit handles one walk entry. An entry the walk itself could not read is
// logged and skipped, never propagated: a single unreadable subtree must
// not abort the scan, it just contributes no files.
func (s *Scanner) visit(repoRoot, path string, info os.FileInfo, walkErr error, files *[]string) error {
	if walkErr != nil {
		s.logger.Warn("Skipping unreadable entry", map[string]interface{}{
			"path":  path,
			"error": walkErr.Error(),
		})
		if info != nil && info.IsDir() && path != repoRoot {
			return filepath.SkipDir
		}
		return nil
	}

	if info.IsDir() {
		name := info.Name()
		if path != repoRoot && (strings.HasPrefix(name, ".") || s.ignoreDirs[name]) {
			return filepath.SkipDir
		}
		return nil
	}

	if !s.extensions[strings.ToLower(filepath.Ext(path))] {
		return nil
	}

	rel, err := paths.CanonicalizePath(path, repoRoot)
	if err != nil {
		s.logger.Warn("Skipping file with unresolvable path", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil
	}
	*files = append(*files, rel)

	return nil
}

// IsTestFile reports whether a file carries the test-suffix convention
// (base name ending in "_test" before the extension). Test files do not
// contribute imports, exports, or line counts to a module.
func IsTestFile(relPath string) bool {
	base := filepath.Base(relPath)
	ext := filepath.Ext(base)
	return strings.HasSuffix(strings.TrimSuffix(base, ext), "_test")
}
