package scheduler

import (
	"context"
	"testing"
)

func TestRunNow(t *testing.T) {
	runs := 0
	s := NewScheduler(context.Background(), func() { runs++ })
	s.RunNow()
	s.RunNow()
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}
}

func TestRunSkippedAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runs := 0
	s := NewScheduler(ctx, func() { runs++ })
	cancel()
	s.RunNow()
	if runs != 0 {
		t.Errorf("expected no runs after cancel, got %d", runs)
	}
}

func TestRegister_InvalidExpression(t *testing.T) {
	s := NewScheduler(context.Background(), func() {})
	if err := s.Register("not a cron"); err == nil {
		t.Error("expected error for malformed cron expression")
	}
	if err := s.Register("0 0 9 * * *"); err != nil {
		t.Errorf("valid expression rejected: %v", err)
	}
}
