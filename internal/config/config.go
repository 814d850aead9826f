package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"modscope/internal/errors"
)

// Config represents the complete modscope configuration. It is constructed
// once per run and threaded explicitly into every component; no package reads
// configuration from ambient state.
type Config struct {
	Version  int    `json:"version" mapstructure:"version"`
	RepoRoot string `json:"repoRoot" mapstructure:"repoRoot"`

	Scan    ScanConfig    `json:"scan" mapstructure:"scan"`
	Report  ReportConfig  `json:"report" mapstructure:"report"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ScanConfig controls the source tree walk and per-file extraction
type ScanConfig struct {
	// Extensions lists source file extensions to analyze
	Extensions []string `json:"extensions" mapstructure:"extensions"`
	// IgnoreDirs lists directory names pruned during the walk, in addition
	// to hidden directories (name starting with ".")
	IgnoreDirs []string `json:"ignoreDirs" mapstructure:"ignoreDirs"`
	// MaxFileSizeBytes skips files larger than this during extraction
	MaxFileSizeBytes int `json:"maxFileSizeBytes" mapstructure:"maxFileSizeBytes"`
	// Workers is the number of parallel extraction workers. 1 means the
	// sequential scan; merges are serialized regardless.
	Workers int `json:"workers" mapstructure:"workers"`
}

// ReportConfig controls report presentation limits
type ReportConfig struct {
	// TopModules is the size of the importance ranking table
	TopModules int `json:"topModules" mapstructure:"topModules"`
	// TopDependencies is the size of the external dependency usage table
	TopDependencies int `json:"topDependencies" mapstructure:"topDependencies"`
	// PathDisplay is how many learning path entries are shown
	PathDisplay int `json:"pathDisplay" mapstructure:"pathDisplay"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		RepoRoot: ".",
		Scan: ScanConfig{
			Extensions:       []string{".go"},
			IgnoreDirs:       []string{"vendor", "node_modules"},
			MaxFileSizeBytes: 1024 * 1024,
			Workers:          1,
		},
		Report: ReportConfig{
			TopModules:      10,
			TopDependencies: 10,
			PathDisplay:     8,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig reads .modscope/config.json under repoRoot. A missing config
// file is not an error; defaults are returned.
func LoadConfig(repoRoot string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("repoRoot", ".")
	v.SetDefault("scan.extensions", []string{".go"})
	v.SetDefault("scan.ignoreDirs", []string{"vendor", "node_modules"})
	v.SetDefault("scan.maxFileSizeBytes", 1024*1024)
	v.SetDefault("scan.workers", 1)
	v.SetDefault("report.topModules", 10)
	v.SetDefault("report.topDependencies", 10)
	v.SetDefault("report.pathDisplay", 8)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(repoRoot, ".modscope"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, errors.New(errors.ConfigInvalid, "failed to read config file", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New(errors.ConfigInvalid, "failed to parse config file", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New(errors.ConfigInvalid, "scan.extensions must not be empty", nil)
	}
	if c.Scan.Workers < 1 {
		return errors.New(errors.ConfigInvalid, "scan.workers must be at least 1", nil)
	}
	if c.Report.TopModules < 1 || c.Report.TopDependencies < 1 || c.Report.PathDisplay < 1 {
		return errors.New(errors.ConfigInvalid, "report limits must be at least 1", nil)
	}
	return nil
}
