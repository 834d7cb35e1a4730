// Package config resolves the flipset command configuration from flags,
// FLIPSET_* environment variables, an optional YAML file and defaults, in
// that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/flipset/flipset"
	"github.com/katalvlaran/flipset/knapsack"
	"github.com/katalvlaran/flipset/report"
)

// EnvPrefix prefixes every environment override, e.g. FLIPSET_DATA_DIR.
const EnvPrefix = "FLIPSET"

// Keys, shared by flags, env vars and the YAML file.
const (
	KeyDataDir        = "data_dir"
	KeyOutput         = "output"
	KeyFormat         = "format"
	KeyConvention     = "convention"
	KeyMemoryMode     = "memory_mode"
	KeyStatewideBonus = "statewide_bonus"
	KeyWorkers        = "workers"
	KeyDetailed       = "detailed"
	KeyVerbose        = "verbose"
)

var (
	// ErrMissingDataDir indicates no data directory was configured.
	ErrMissingDataDir = errors.New("config: data_dir is required")
	// ErrInvalid indicates a value outside its allowed set.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the resolved command configuration.
type Config struct {
	DataDir        string `mapstructure:"data_dir"`
	Output         string `mapstructure:"output"`
	Format         string `mapstructure:"format"`
	Convention     string `mapstructure:"convention"`
	MemoryMode     string `mapstructure:"memory_mode"`
	StatewideBonus int    `mapstructure:"statewide_bonus"`
	Workers        int    `mapstructure:"workers"`
	Detailed       bool   `mapstructure:"detailed"`
	Verbose        bool   `mapstructure:"verbose"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Format:         string(report.JSON),
		Convention:     flipset.StrictFlip.String(),
		MemoryMode:     knapsack.TwoRows.String(),
		StatewideBonus: flipset.DefaultStatewideBonus,
		Workers:        1,
	}
}

// Load resolves the configuration. file may be empty; flags may be nil.
// Flags are bound by name with '-' read as '_', so --data-dir sets data_dir.
// Only flags the user changed override lower sources.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyDataDir, def.DataDir)
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyConvention, def.Convention)
	v.SetDefault(KeyMemoryMode, def.MemoryMode)
	v.SetDefault(KeyStatewideBonus, def.StatewideBonus)
	v.SetDefault(KeyWorkers, def.Workers)
	v.SetDefault(KeyDetailed, def.Detailed)
	v.SetDefault(KeyVerbose, def.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !isKey(key) {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func isKey(key string) bool {
	switch key {
	case KeyDataDir, KeyOutput, KeyFormat, KeyConvention, KeyMemoryMode,
		KeyStatewideBonus, KeyWorkers, KeyDetailed, KeyVerbose:
		return true
	}

	return false
}

// Validate checks every field and returns all problems at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, ErrMissingDataDir)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: format: %w", ErrInvalid, err))
	}
	if _, err := ParseConvention(c.Convention); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseMemoryMode(c.MemoryMode); err != nil {
		errs = append(errs, err)
	}
	if c.StatewideBonus < 1 {
		errs = append(errs, fmt.Errorf("%w: statewide_bonus %d, want >= 1", ErrInvalid, c.StatewideBonus))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers %d, want >= 1", ErrInvalid, c.Workers))
	}

	return errors.Join(errs...)
}

// ParseConvention accepts "strict" or "exact".
func ParseConvention(name string) (flipset.Convention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case flipset.StrictFlip.String():
		return flipset.StrictFlip, nil
	case flipset.ExactTie.String():
		return flipset.ExactTie, nil
	default:
		return 0, fmt.Errorf("%w: convention %q, want strict or exact", ErrInvalid, name)
	}
}

// ParseMemoryMode accepts "tworows" or "full".
func ParseMemoryMode(name string) (knapsack.MemoryMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case knapsack.TwoRows.String():
		return knapsack.TwoRows, nil
	case knapsack.FullMatrix.String():
		return knapsack.FullMatrix, nil
	default:
		return 0, fmt.Errorf("%w: memory_mode %q, want tworows or full", ErrInvalid, name)
	}
}

// AnalyzerOptions maps a validated Config to analyzer options.
func (c Config) AnalyzerOptions() ([]flipset.Option, error) {
	conv, err := ParseConvention(c.Convention)
	if err != nil {
		return nil, err
	}
	mode, err := ParseMemoryMode(c.MemoryMode)
	if err != nil {
		return nil, err
	}

	return []flipset.Option{
		flipset.WithConvention(conv),
		flipset.WithMemoryMode(mode),
		flipset.WithStatewideBonus(c.StatewideBonus),
		flipset.WithWorkers(c.Workers),
	}, nil
}

// ReportOptions maps a validated Config to report options.
func (c Config) ReportOptions() (report.Options, error) {
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return report.Options{}, err
	}

	return report.Options{Format: format, Detailed: c.Detailed}, nil
}
