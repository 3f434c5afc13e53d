package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ABTestLab/internal/analyzer"
	"ABTestLab/internal/chart"
	"ABTestLab/internal/config"
	"ABTestLab/internal/model"
	"ABTestLab/internal/recorder"
	"ABTestLab/internal/report"
	"ABTestLab/internal/scheduler"
	"ABTestLab/internal/simulator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ABTestLab starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	exp, err := cfg.ExperimentParams()
	if err != nil {
		log.Fatalf("[FATAL] experiment parameters: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Run once and exit unless a report cron is configured.
	if cfg.Schedule.ReportCron == "" {
		if err := runReport(exp, cfg, rec); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, func() {
		if err := runReport(exp, cfg, rec); err != nil {
			log.Printf("[ERROR] report run: %v", err)
		}
	})
	if err := sched.Register(cfg.Schedule.ReportCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	sched.RunNow()

	log.Println("[INFO] ABTestLab is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] ABTestLab stopped")
}

// runReport executes a full simulation and emits all configured outputs.
// Each run constructs a fresh seeded sampler, so the result is deterministic
// for a given config.
func runReport(exp model.Experiment, cfg *config.Config, rec recorder.Recorder) error {
	sampler := simulator.NewBinomialSampler(exp.Seed)
	obs, sum, err := analyzer.Run(exp, sampler)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	fmt.Print(report.Format(exp, obs, sum))

	if cfg.Output.XLSXPath != "" {
		if err := report.WriteXLSX(cfg.Output.XLSXPath, exp, obs, sum); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		log.Printf("[INFO] xlsx written to %s", cfg.Output.XLSXPath)
	}

	if err := chart.Render(cfg.Output.ChartPath, cfg.Output.ChartDPI, exp, obs); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	fmt.Printf("\nChart saved to %s\n", cfg.Output.ChartPath)

	if err := rec.RecordRun(exp, obs, sum); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	return nil
}
