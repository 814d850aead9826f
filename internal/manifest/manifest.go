// Package manifest resolves the project's import-path prefix from its
// module manifest. The prefix is what separates internal imports from
// external ones everywhere downstream.
package manifest

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"modscope/internal/logging"
)

const (
	// FileName is the manifest file searched for at the project root
	FileName = "go.mod"

	// Keyword introduces the line carrying the import-path prefix
	Keyword = "module"

	// UnknownPrefix is the sentinel returned when no prefix can be resolved.
	// With this sentinel every import classifies as external; a missing or
	// broken manifest degrades the analysis instead of aborting it.
	UnknownPrefix = "unknown"
)

// Resolve reads the manifest at repoRoot and returns the project prefix.
// The first line whose first token equals the keyword yields the second
// whitespace-separated token. All failure modes return UnknownPrefix.
func Resolve(repoRoot string, logger *logging.Logger) string {
	path := filepath.Join(repoRoot, FileName)

	file, err := os.Open(path)
	if err != nil {
		logger.Warn("Manifest not readable, imports will classify as external", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return UnknownPrefix
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, Keyword+" ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			return fields[1]
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Warn("Error reading manifest", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}

	return UnknownPrefix
}

// IsInternal reports whether an import path belongs to the project.
// The unknown sentinel never matches, even if an import path happens to
// start with the literal string "unknown".
func IsInternal(importPath, prefix string) bool {
	if prefix == UnknownPrefix {
		return false
	}
	return strings.HasPrefix(importPath, prefix)
}
