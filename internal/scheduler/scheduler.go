package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Amarie1212/ppmnurulhakim/internal/jobs"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// UTC with seconds precision, so the specs read ss mm hh.
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}
	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.SendReviewReminders, s.jobs.SendPendingReviewReminders)
	if err != nil {
		logger.Error("Failed to register SendPendingReviewReminders job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.CleanupOrphanBlobs, s.jobs.CleanupOrphanBlobs)
	if err != nil {
		logger.Error("Failed to register CleanupOrphanBlobs job", "error", err)
	}
}

// Start begins the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
