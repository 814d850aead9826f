package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"modscope/internal/report"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatHuman OutputFormat = "human"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// FormatReport encodes a report according to the specified format
func FormatReport(r *report.Report, format OutputFormat) (string, error) {
	switch format {
	case FormatHuman:
		return report.RenderHuman(r), nil
	case FormatJSON:
		return formatJSON(r)
	case FormatYAML:
		return formatYAML(r)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(r *report.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatYAML(r *report.Report) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}
