package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the report job on a cron cadence.
type Scheduler struct {
	Cron *cron.Cron
	Ctx  context.Context
	Job  func()
}

// NewScheduler creates a Scheduler around the given job.
func NewScheduler(ctx context.Context, job func()) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Ctx:  ctx,
		Job:  job,
	}
}

// Register adds the report job under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the report job immediately (manual trigger / run on start).
func (s *Scheduler) RunNow() {
	s.run()
}

func (s *Scheduler) run() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] running report task")
	s.Job()
}
