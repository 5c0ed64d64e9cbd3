package scheduler

import (
	"context"
	"log/slog"

	"mesa-judge/internal/core/port"
)

// Purger deletes expired overrides.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// PurgeOverridesJob removes overrides whose day has ended. Reads already
// ignore them; the job keeps storage from growing.
type PurgeOverridesJob struct {
	Store  Purger
	Logger *slog.Logger
}

func (j PurgeOverridesJob) Name() string { return "purge_overrides" }

func (j PurgeOverridesJob) Run(ctx context.Context) error {
	n, err := j.Store.PurgeExpired(ctx)
	if err != nil {
		return err
	}
	j.Logger.Info("expired overrides purged", slog.Int64("count", n))
	return nil
}

// JudgmentRunJob runs a judgment over the record source. The report is
// logged and exported through the use case's metrics.
type JudgmentRunJob struct {
	UseCase port.JudgmentUseCase
}

func (j JudgmentRunJob) Name() string { return "judgment_run" }

func (j JudgmentRunJob) Run(ctx context.Context) error {
	_, err := j.UseCase.Run(ctx)
	return err
}
