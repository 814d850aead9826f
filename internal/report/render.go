package report

import (
	"fmt"
	"strings"
)

const separatorWidth = 70

// RenderHuman formats the report as the human-readable table layout.
func RenderHuman(r *Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("modscope v%s - module dependency analysis\n", r.ToolVersion))
	b.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")

	b.WriteString("Project:\n")
	b.WriteString(fmt.Sprintf("  Prefix:       %s\n", r.Prefix))
	b.WriteString(fmt.Sprintf("  Modules:      %d\n", r.Summary.ModuleCount))
	b.WriteString(fmt.Sprintf("  Source files: %d\n", r.Summary.FileCount))
	b.WriteString(fmt.Sprintf("  Code lines:   %d\n", r.Summary.TotalCodeLines))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Module importance (top %d):\n", len(r.Modules)))
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-32s %8s %8s %8s %8s\n", "MODULE", "SCORE", "LINES", "EXPORTS", "IMPORTS"))
	for _, m := range r.Modules {
		b.WriteString(fmt.Sprintf("%-32s %8.1f %8d %8d %8d\n",
			m.Name, m.Score, m.CodeLines, m.Exports, m.InternalImports))
	}
	b.WriteString("\n")

	b.WriteString("Recommended learning path:\n")
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	for _, e := range r.LearningPath {
		b.WriteString(fmt.Sprintf("%2d. %s\n", e.Rank, e.Name))
		b.WriteString(fmt.Sprintf("    %d files, %d code lines, %d exported\n",
			e.FileCount, e.CodeLines, e.Exports))
		b.WriteString(fmt.Sprintf("    %s\n", e.Rationale))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("External dependencies (top %d):\n", len(r.ExternalDependencies)))
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	for _, d := range r.ExternalDependencies {
		b.WriteString(fmt.Sprintf("  %s (used by %d modules)\n", d.Path, d.Modules))
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range r.Warnings {
			b.WriteString(fmt.Sprintf("  ! %s [%s]: %s\n", w.File, w.Stage, w.Message))
		}
	}

	return b.String()
}
