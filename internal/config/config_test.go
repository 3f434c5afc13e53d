package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Experiment.Days != 14 {
		t.Errorf("expected 14 days, got %d", cfg.Experiment.Days)
	}
	if cfg.Experiment.VisitorsPerDay != 1000 {
		t.Errorf("expected 1000 visitors/day, got %d", cfg.Experiment.VisitorsPerDay)
	}
	if cfg.Experiment.BaselineRate != 0.10 || cfg.Experiment.VariantRate != 0.12 {
		t.Errorf("unexpected default rates: %.2f / %.2f",
			cfg.Experiment.BaselineRate, cfg.Experiment.VariantRate)
	}
	if cfg.Experiment.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Experiment.Seed)
	}
	if cfg.Output.ChartPath != "ab_test_results.png" {
		t.Errorf("unexpected chart path: %s", cfg.Output.ChartPath)
	}
	if cfg.Output.ChartDPI != 150 {
		t.Errorf("expected 150 DPI, got %d", cfg.Output.ChartDPI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("experiment:\n  days: 7\n  variant_rate: 0.15\noutput:\n  chart_path: out.png\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AB_DAYS", "21")
	t.Setenv("AB_SEED", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Experiment.Days != 21 {
		t.Errorf("env should override file: expected 21 days, got %d", cfg.Experiment.Days)
	}
	if cfg.Experiment.VariantRate != 0.15 {
		t.Errorf("expected variant rate 0.15 from file, got %.2f", cfg.Experiment.VariantRate)
	}
	if cfg.Experiment.Seed != 7 {
		t.Errorf("expected seed 7 from env, got %d", cfg.Experiment.Seed)
	}
	if cfg.Output.ChartPath != "out.png" {
		t.Errorf("expected chart path from file, got %s", cfg.Output.ChartPath)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative days", func(c *Config) { c.Experiment.Days = -1 }},
		{"negative visitors", func(c *Config) { c.Experiment.VisitorsPerDay = -10 }},
		{"baseline above one", func(c *Config) { c.Experiment.BaselineRate = 1.5 }},
		{"negative variant", func(c *Config) { c.Experiment.VariantRate = -0.2 }},
		{"confidence at one", func(c *Config) { c.Experiment.Confidence = 1 }},
		{"negative dpi", func(c *Config) { c.Output.ChartDPI = -150 }},
	}
	for _, tt := range tests {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("%s: load: %v", tt.name, err)
		}
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestExperimentParams(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	exp, err := cfg.ExperimentParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if !exp.StartDate.Equal(want) {
		t.Errorf("expected start date %s, got %s", want, exp.StartDate)
	}

	cfg.Experiment.StartDate = "01/01/2023"
	if _, err := cfg.ExperimentParams(); err == nil {
		t.Error("expected error for malformed start date")
	}
}
