// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job.
type Job interface {
	Run(ctx context.Context) error
	Name() string
}

// Scheduler manages background jobs. Schedules use the standard five field
// cron syntax evaluated in the scheduler's location.
type Scheduler struct {
	cron    *cron.Cron
	log     *slog.Logger
	ctx     context.Context
	timeout time.Duration
}

// New creates a scheduler whose jobs receive a context derived from ctx
// and bounded by timeout.
func New(ctx context.Context, log *slog.Logger, loc *time.Location, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		log:     log.With(slog.String("component", "scheduler")),
		ctx:     ctx,
		timeout: timeout,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

// AddJob registers a job with a cron schedule, e.g. "5 0 * * *" or
// "@every 30m". Overlapping runs of the same job are skipped.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	wrapped := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		if err := s.RunNow(job); err != nil {
			s.log.Error("job failed", slog.String("job", job.Name()), slog.Any("error", err))
		}
	}))
	if _, err := s.cron.AddJob(schedule, wrapped); err != nil {
		return err
	}
	s.log.Info("job registered", slog.String("schedule", schedule), slog.String("job", job.Name()))
	return nil
}

// RunNow executes a job immediately, outside its schedule.
func (s *Scheduler) RunNow(job Job) error {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	s.log.Debug("running job", slog.String("job", job.Name()))
	if err := job.Run(ctx); err != nil {
		return err
	}
	s.log.Debug("job completed", slog.String("job", job.Name()), slog.Duration("elapsed", time.Since(start)))
	return nil
}
