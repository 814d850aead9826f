package analyzer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"modscope/internal/config"
	"modscope/internal/errors"
	"modscope/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// writeTestProject lays out a small project: core imported by api and
// cmd, api imported by cmd.
func writeTestProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeProjectFile(t, root, "go.mod", "module example.com/demo\n\ngo 1.24\n")

	writeProjectFile(t, root, "core/core.go", `package core

import "fmt"

func Engine() {
	fmt.Println("engine")
}

func Config() {}
`)
	writeProjectFile(t, root, "core/core_test.go", `package core

import "testing"

func TestEngine(t *testing.T) {}

func HelperExport() {}
`)
	writeProjectFile(t, root, "api/api.go", `package api

import (
	"fmt"

	"example.com/demo/core"
)

func Serve() {
	fmt.Println(core.Engine)
}
`)
	writeProjectFile(t, root, "cmd/main.go", `package main

import (
	"os"

	"example.com/demo/api"
	"example.com/demo/core"
)

func main() {
	_ = os.Args
	api.Serve()
	core.Engine()
}
`)
	return root
}

func testConfig(root string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.RepoRoot = root
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	root := writeTestProject(t)

	result, err := New(testConfig(root), testLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Prefix != "example.com/demo" {
		t.Errorf("prefix = %q", result.Prefix)
	}
	if len(result.Modules) != 3 {
		t.Fatalf("modules = %v, want core, api, cmd", moduleNames(result.Modules))
	}

	core := result.Modules["core"]
	if core.FileCount != 1 {
		t.Errorf("core.FileCount = %d, want 1 (test file excluded)", core.FileCount)
	}
	if core.Exports["HelperExport"] {
		t.Error("export from test file leaked into module")
	}
	if len(core.Exports) != 2 {
		t.Errorf("core exports = %v, want Engine and Config", core.Exports)
	}

	api := result.Modules["api"]
	if !api.InternalImports["example.com/demo/core"] {
		t.Errorf("api internal imports = %v", api.InternalImports)
	}
	if !api.ExternalImports["fmt"] {
		t.Errorf("api external imports = %v", api.ExternalImports)
	}

	if result.Dependents["core"] != 2 || result.Dependents["api"] != 1 || result.Dependents["cmd"] != 0 {
		t.Errorf("dependents = %v", result.Dependents)
	}

	if result.ExternalUsage["fmt"] != 2 {
		t.Errorf("fmt usage = %d, want 2 distinct modules", result.ExternalUsage["fmt"])
	}
	if result.ExternalUsage["os"] != 1 {
		t.Errorf("os usage = %d, want 1", result.ExternalUsage["os"])
	}

	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
	if result.FilesScanned != 3 {
		t.Errorf("FilesScanned = %d, want 3", result.FilesScanned)
	}
}

func TestRunPartitionInvariant(t *testing.T) {
	root := writeTestProject(t)

	result, err := New(testConfig(root), testLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for name, mod := range result.Modules {
		for imp := range mod.InternalImports {
			if mod.ExternalImports[imp] {
				t.Errorf("module %s: import %q in both partitions", name, imp)
			}
		}
	}
}

func TestRunMissingManifest(t *testing.T) {
	root := writeTestProject(t)
	if err := os.Remove(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("remove manifest: %v", err)
	}

	result, err := New(testConfig(root), testLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Prefix != "unknown" {
		t.Errorf("prefix = %q, want sentinel", result.Prefix)
	}
	for name, mod := range result.Modules {
		if len(mod.InternalImports) != 0 {
			t.Errorf("module %s: internal imports %v with unknown prefix", name, mod.InternalImports)
		}
	}
	// Project-own imports now count as external usage
	if result.ExternalUsage["example.com/demo/core"] != 2 {
		t.Errorf("usage of project import = %d, want 2", result.ExternalUsage["example.com/demo/core"])
	}
}

func TestRunNoSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "README.md", "# nothing to analyze\n")

	_, err := New(testConfig(root), testLogger()).Run(context.Background())
	if !errors.IsCode(err, errors.NoSourceFiles) {
		t.Fatalf("Run() error = %v, want NO_SOURCE_FILES", err)
	}
}

func TestRunOnlyTestFilesIsTerminal(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "go.mod", "module example.com/demo\n")
	writeProjectFile(t, root, "core/core_test.go", "package core\n")

	_, err := New(testConfig(root), testLogger()).Run(context.Background())
	if !errors.IsCode(err, errors.NoSourceFiles) {
		t.Fatalf("Run() error = %v, want NO_SOURCE_FILES", err)
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	root := writeTestProject(t)

	seq, err := New(testConfig(root), testLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("sequential Run() error = %v", err)
	}

	cfg := testConfig(root)
	cfg.Scan.Workers = 4
	par, err := New(cfg, testLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("parallel Run() error = %v", err)
	}

	if !reflect.DeepEqual(seq.Modules, par.Modules) {
		t.Errorf("parallel aggregation diverged:\n%+v\n%+v", seq.Modules, par.Modules)
	}
	if !reflect.DeepEqual(seq.Scores, par.Scores) {
		t.Errorf("scores diverged: %v vs %v", seq.Scores, par.Scores)
	}
	if !reflect.DeepEqual(seq.LearningPath, par.LearningPath) {
		t.Errorf("learning path diverged: %v vs %v", seq.LearningPath, par.LearningPath)
	}
}

func moduleNames(modules map[string]Module) []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	return names
}
