package manifest

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"modscope/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
}

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "simple manifest",
			content: "module example.com/proj\n\ngo 1.24\n",
			want:    "example.com/proj",
		},
		{
			name:    "keyword line not first",
			content: "// generated\nmodule example.com/other\n",
			want:    "example.com/other",
		},
		{
			name:    "trailing tokens ignored",
			content: "module example.com/proj // comment\n",
			want:    "example.com/proj",
		},
		{
			name:    "no keyword line",
			content: "go 1.24\nrequire example.com/dep v1.0.0\n",
			want:    UnknownPrefix,
		},
		{
			name:    "keyword without value",
			content: "module\ngo 1.24\n",
			want:    UnknownPrefix,
		},
		{
			name:    "empty file",
			content: "",
			want:    UnknownPrefix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tt.content)

			got := Resolve(dir, testLogger())
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveMissingManifest(t *testing.T) {
	got := Resolve(t.TempDir(), testLogger())
	if got != UnknownPrefix {
		t.Errorf("Resolve() = %q, want sentinel %q", got, UnknownPrefix)
	}
}

func TestIsInternal(t *testing.T) {
	tests := []struct {
		name       string
		importPath string
		prefix     string
		want       bool
	}{
		{"project import", "example.com/proj/core", "example.com/proj", true},
		{"project root import", "example.com/proj", "example.com/proj", true},
		{"external import", "github.com/spf13/cobra", "example.com/proj", false},
		{"stdlib import", "fmt", "example.com/proj", false},
		{"unknown sentinel never matches", "unknownlib/core", UnknownPrefix, false},
		{"unknown sentinel exact", "unknown", UnknownPrefix, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsInternal(tt.importPath, tt.prefix)
			if got != tt.want {
				t.Errorf("IsInternal(%q, %q) = %v, want %v", tt.importPath, tt.prefix, got, tt.want)
			}
		})
	}
}
