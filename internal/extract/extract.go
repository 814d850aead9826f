// Package extract pulls structural facts (imports, exported identifiers)
// out of raw source text with regular expressions. It is deliberately not a
// parser: quoted paths inside comments and identifiers inside string
// literals can match. The SourceExtractor interface exists so a real lexer
// could replace the patterns without touching aggregation or scoring.
package extract

import (
	"regexp"
)

// SourceExtractor extracts structural facts from file content
type SourceExtractor interface {
	// ExtractImports returns the set of declared import paths
	ExtractImports(content string) map[string]bool

	// ExtractExports returns the set of exported top-level identifiers
	ExtractExports(content string) map[string]bool
}

var (
	// Single line: import "path"
	singleImportRe = regexp.MustCompile(`import\s+"([^"]+)"`)

	// Parenthesized block: import ( ... ), matched across lines
	importBlockRe = regexp.MustCompile(`(?s)import\s*\((.*?)\)`)

	// Quoted path inside a block, one per physical line
	quotedPathRe = regexp.MustCompile(`"([^"]+)"`)

	// Top-level function-like declaration with an uppercase name; the
	// optional group admits a receiver so methods are captured too
	exportedFuncRe = regexp.MustCompile(`func\s+(?:\([^)]*\)\s+)?([A-Z]\w*)\s*\(`)
)

// PatternExtractor is the regex-based SourceExtractor implementation
type PatternExtractor struct{}

// NewPatternExtractor creates a pattern-based extractor
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// ExtractImports finds imports declared in either lexical shape and unions
// them into one set; duplicates collapse naturally.
func (e *PatternExtractor) ExtractImports(content string) map[string]bool {
	imports := make(map[string]bool)

	for _, match := range singleImportRe.FindAllStringSubmatch(content, -1) {
		imports[match[1]] = true
	}

	for _, block := range importBlockRe.FindAllStringSubmatch(content, -1) {
		for _, match := range quotedPathRe.FindAllStringSubmatch(block[1], -1) {
			imports[match[1]] = true
		}
	}

	return imports
}

// ExtractExports finds top-level declarations whose name begins with an
// uppercase letter.
func (e *PatternExtractor) ExtractExports(content string) map[string]bool {
	exports := make(map[string]bool)

	for _, match := range exportedFuncRe.FindAllStringSubmatch(content, -1) {
		exports[match[1]] = true
	}

	return exports
}
