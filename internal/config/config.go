package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"ABTestLab/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Experiment struct {
		Days           int     `yaml:"days"`
		VisitorsPerDay int     `yaml:"visitors_per_day"`
		BaselineRate   float64 `yaml:"baseline_rate"`
		VariantRate    float64 `yaml:"variant_rate"`
		Seed           uint64  `yaml:"seed"`
		StartDate      string  `yaml:"start_date"`
		Confidence     float64 `yaml:"confidence"`
	} `yaml:"experiment"`
	Output struct {
		ChartPath string `yaml:"chart_path"`
		ChartDPI  int    `yaml:"chart_dpi"`
		XLSXPath  string `yaml:"xlsx_path"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		ReportCron string `yaml:"report_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("AB_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Experiment.Days = n
		}
	}
	if v := os.Getenv("AB_VISITORS_PER_DAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Experiment.VisitorsPerDay = n
		}
	}
	if v := os.Getenv("AB_BASELINE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Experiment.BaselineRate = f
		}
	}
	if v := os.Getenv("AB_VARIANT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Experiment.VariantRate = f
		}
	}
	if v := os.Getenv("AB_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Experiment.Seed = n
		}
	}
	if v := os.Getenv("AB_CHART_PATH"); v != "" {
		cfg.Output.ChartPath = v
	}
	if v := os.Getenv("AB_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("AB_REPORT_CRON"); v != "" {
		cfg.Schedule.ReportCron = v
	}

	// Defaults
	if cfg.Experiment.Days == 0 {
		cfg.Experiment.Days = 14
	}
	if cfg.Experiment.VisitorsPerDay == 0 {
		cfg.Experiment.VisitorsPerDay = 1000
	}
	if cfg.Experiment.BaselineRate == 0 {
		cfg.Experiment.BaselineRate = 0.10
	}
	if cfg.Experiment.VariantRate == 0 {
		cfg.Experiment.VariantRate = 0.12
	}
	if cfg.Experiment.Seed == 0 {
		cfg.Experiment.Seed = 42
	}
	if cfg.Experiment.StartDate == "" {
		cfg.Experiment.StartDate = "2023-01-01"
	}
	if cfg.Experiment.Confidence == 0 {
		cfg.Experiment.Confidence = 0.95
	}
	if cfg.Output.ChartPath == "" {
		cfg.Output.ChartPath = "ab_test_results.png"
	}
	if cfg.Output.ChartDPI == 0 {
		cfg.Output.ChartDPI = 150
	}

	return cfg, nil
}

// Validate checks that all parameters are usable.
func (c *Config) Validate() error {
	if c.Experiment.Days <= 0 {
		return fmt.Errorf("experiment.days must be positive")
	}
	if c.Experiment.VisitorsPerDay <= 0 {
		return fmt.Errorf("experiment.visitors_per_day must be positive")
	}
	if c.Experiment.BaselineRate < 0 || c.Experiment.BaselineRate > 1 {
		return fmt.Errorf("experiment.baseline_rate must be in [0, 1]")
	}
	if c.Experiment.VariantRate < 0 || c.Experiment.VariantRate > 1 {
		return fmt.Errorf("experiment.variant_rate must be in [0, 1]")
	}
	if c.Experiment.Confidence <= 0 || c.Experiment.Confidence >= 1 {
		return fmt.Errorf("experiment.confidence must be in (0, 1)")
	}
	if c.Output.ChartDPI <= 0 {
		return fmt.Errorf("output.chart_dpi must be positive")
	}
	return nil
}

// ExperimentParams builds the experiment parameters from the validated config.
func (c *Config) ExperimentParams() (model.Experiment, error) {
	start, err := time.Parse("2006-01-02", c.Experiment.StartDate)
	if err != nil {
		return model.Experiment{}, fmt.Errorf("parse experiment.start_date: %w", err)
	}
	return model.Experiment{
		Days:           c.Experiment.Days,
		VisitorsPerDay: c.Experiment.VisitorsPerDay,
		BaselineRate:   c.Experiment.BaselineRate,
		VariantRate:    c.Experiment.VariantRate,
		Seed:           c.Experiment.Seed,
		StartDate:      start,
		Confidence:     c.Experiment.Confidence,
	}, nil
}
