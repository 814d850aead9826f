package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"modscope/internal/analyzer"
	"modscope/internal/config"
	"modscope/internal/errors"
	"modscope/internal/logging"
	"modscope/internal/report"
	"modscope/internal/version"
)

var (
	analyzeFormat  string
	analyzeOutput  string
	analyzeTop     int
	analyzeWorkers int
	logLevelFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "modscope [path]",
	Short: "Analyze module dependencies of a source tree",
	Long: `modscope scans a project tree, reconstructs its directory-based module
decomposition, classifies imports as internal or external, and derives an
importance ranking and a recommended reading order over the modules.

Without arguments, the current directory is analyzed.

Examples:
  modscope
  modscope ~/src/myproject
  modscope --format=json
  modscope --output=report.json.gz --format=json
  modscope --top=20`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.Version,
	Run:     runAnalyze,
}

func init() {
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.Flags().StringVar(&analyzeFormat, "format", "human", "Output format (human, json, yaml)")
	rootCmd.Flags().StringVar(&analyzeOutput, "output", "", "Write the report to a file (.gz compresses)")
	rootCmd.Flags().IntVar(&analyzeTop, "top", 0, "Override display size of ranking tables")
	rootCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "Parallel extraction workers (default from config)")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	start := time.Now()

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg := loadConfig(root)
	logger := newLogger(cfg)

	result, err := analyzer.New(cfg, logger).Run(cmd.Context())
	if err != nil {
		if errors.IsCode(err, errors.NoSourceFiles) {
			fmt.Fprintf(os.Stderr, "No source files found under %s\n", root)
		} else {
			fmt.Fprintf(os.Stderr, "Error analyzing project: %v\n", err)
		}
		os.Exit(1)
	}

	rep := report.Build(result, cfg.Report)

	output, err := FormatReport(rep, OutputFormat(analyzeFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	if analyzeOutput != "" {
		if err := writeOutput(analyzeOutput, output); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		logger.Info("Report written", map[string]interface{}{
			"path": analyzeOutput,
		})
	} else {
		fmt.Println(output)
	}

	logger.Debug("Analysis command completed", map[string]interface{}{
		"root":     root,
		"duration": time.Since(start).Milliseconds(),
	})
}

// loadConfig loads the project config and applies CLI overrides. A broken
// config file degrades to defaults with a warning, matching the rest of
// the tool's non-fatal posture.
func loadConfig(root string) *config.Config {
	cfg, err := config.LoadConfig(root)
	if err != nil {
		bootLogger := logging.NewLogger(logging.Config{
			Format: logging.HumanFormat,
			Level:  logging.WarnLevel,
		})
		bootLogger.Warn("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		cfg = config.DefaultConfig()
	}
	cfg.RepoRoot = root

	if analyzeTop > 0 {
		cfg.Report.TopModules = analyzeTop
		cfg.Report.TopDependencies = analyzeTop
	}
	if analyzeWorkers > 0 {
		cfg.Scan.Workers = analyzeWorkers
	}
	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}

	return cfg
}

func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}
