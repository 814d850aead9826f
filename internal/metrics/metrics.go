// Package metrics classifies source lines as blank, comment, or code.
package metrics

import (
	"strings"
)

// CommentMarker is the single-line comment prefix recognized during
// classification. Block comments are not tracked; a line inside a block
// comment that does not start with the marker counts as code.
const CommentMarker = "//"

// FileMetrics holds per-file line counts
type FileMetrics struct {
	Total   int `json:"total"`
	Blank   int `json:"blank"`
	Comment int `json:"comment"`
	Code    int `json:"code"`
}

// Classify computes line counts for file content. Classification is
// order-independent: only the trimmed shape of each line matters.
func Classify(content string) FileMetrics {
	var m FileMetrics

	if content == "" {
		return m
	}

	lines := strings.Split(content, "\n")
	// A trailing newline produces one empty trailing element, not a line
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		m.Total++
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			m.Blank++
		case strings.HasPrefix(trimmed, CommentMarker):
			m.Comment++
		default:
			m.Code++
		}
	}

	return m
}
