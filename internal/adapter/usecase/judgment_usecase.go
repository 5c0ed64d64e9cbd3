package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mesa-judge/internal/core/anomaly"
	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/judgment"
	"mesa-judge/internal/core/override"
	"mesa-judge/internal/core/port"
	"mesa-judge/internal/metrics"
)

// Options tune a JudgmentUseCase. Zero values pick defaults.
type Options struct {
	// Workers bounds how many campaigns are evaluated at once.
	Workers int
	// LookbackDays is how much history is requested from the record
	// source. It must cover the rule window and the anomaly history.
	LookbackDays int
	// Metrics is optional.
	Metrics *metrics.Registry
	// Now replaces time.Now.
	Now func() time.Time
}

// JudgmentUseCase composes the rule engine, the override store and the
// anomaly detector. It implements port.JudgmentUseCase and performs no I/O
// of its own beyond the injected ports.
type JudgmentUseCase struct {
	source    port.RecordSource
	engine    *judgment.Engine
	detector  *anomaly.Detector
	overrides *override.Store
	logger    *slog.Logger

	workers  int
	lookback int
	metrics  *metrics.Registry
	now      func() time.Time
}

var _ port.JudgmentUseCase = (*JudgmentUseCase)(nil)

// NewJudgmentUseCase wires the components together.
func NewJudgmentUseCase(
	source port.RecordSource,
	engine *judgment.Engine,
	detector *anomaly.Detector,
	overrides *override.Store,
	logger *slog.Logger,
	opts Options,
) *JudgmentUseCase {
	u := &JudgmentUseCase{
		source:    source,
		engine:    engine,
		detector:  detector,
		overrides: overrides,
		logger:    logger,
		workers:   opts.Workers,
		lookback:  opts.LookbackDays,
		metrics:   opts.Metrics,
		now:       opts.Now,
	}
	if u.workers <= 0 {
		u.workers = 8
	}
	if u.lookback < judgment.WindowDays {
		u.lookback = 30
	}
	if u.now == nil {
		u.now = time.Now
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	return u
}

// Judge evaluates campaigns concurrently and keeps results in input order.
// A campaign with invalid records is skipped and reported in Failures.
func (u *JudgmentUseCase) Judge(ctx context.Context, campaigns []domain.Campaign) (*domain.Report, error) {
	start := u.now()
	report, err := u.judge(ctx, campaigns)
	if err != nil {
		if u.metrics != nil {
			u.metrics.ObserveRunError()
		}
		return nil, err
	}
	report.GeneratedAt = start
	if u.metrics != nil {
		u.metrics.ObserveRun(report, u.now().Sub(start))
	}
	u.logger.Info("judgment run completed",
		slog.String("run_id", report.RunID),
		slog.Int("total", report.Summary.Total),
		slog.Int("stop", report.Summary.Stop),
		slog.Int("replace", report.Summary.Replace),
		slog.Int("continue", report.Summary.Continue),
		slog.Int("check", report.Summary.Check),
		slog.Int("failures", len(report.Failures)),
	)
	return report, nil
}

func (u *JudgmentUseCase) judge(ctx context.Context, campaigns []domain.Campaign) (*domain.Report, error) {
	results := make([]domain.JudgmentResult, len(campaigns))
	errs := make([]error, len(campaigns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i := range campaigns {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = u.engine.Evaluate(campaigns[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.Report{RunID: uuid.NewString()}
	ok := make([]domain.JudgmentResult, 0, len(campaigns))
	for i, err := range errs {
		if err != nil {
			u.logger.Warn("campaign skipped",
				slog.String("campaign", campaigns[i].Key), slog.Any("error", err))
			report.Failures = append(report.Failures, domain.CampaignFailure{CampaignKey: campaigns[i].Key, Err: err})
			continue
		}
		ok = append(ok, results[i])
	}

	merged, err := u.overrides.Apply(ctx, ok)
	if err != nil {
		return nil, err
	}
	report.Results = merged
	report.Summary = domain.Tally(merged)
	return report, nil
}

// Run loads the trailing window from the record source and judges it.
func (u *JudgmentUseCase) Run(ctx context.Context) (*domain.Report, error) {
	campaigns, err := u.source.ListCampaigns(ctx, u.since())
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return u.Judge(ctx, campaigns)
}

// DetectAnomalies returns the anomalous findings of all campaigns, worst
// first. Invalid campaigns are logged and skipped.
func (u *JudgmentUseCase) DetectAnomalies(ctx context.Context, campaigns []domain.Campaign) ([]domain.AnomalyFinding, error) {
	var findings []domain.AnomalyFinding
	for _, c := range campaigns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			u.logger.Warn("campaign skipped for anomaly detection",
				slog.String("campaign", c.Key), slog.Any("error", err))
			continue
		}
		findings = append(findings, u.detector.DetectCampaign(c)...)
	}
	ranked := anomaly.Rank(findings)
	if u.metrics != nil {
		u.metrics.ObserveAnomalies(ranked)
	}
	return ranked, nil
}

// ScanAnomalies loads campaigns from the record source and detects anomalies.
func (u *JudgmentUseCase) ScanAnomalies(ctx context.Context) ([]domain.AnomalyFinding, error) {
	campaigns, err := u.source.ListCampaigns(ctx, u.since())
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return u.DetectAnomalies(ctx, campaigns)
}

// SetOverride recomputes the campaign's classification so a request for
// the same verdict clears the override rather than storing a no-op.
func (u *JudgmentUseCase) SetOverride(ctx context.Context, campaignKey string, class domain.Classification, memo string) (*domain.Override, error) {
	class, err := domain.ParseClassification(string(class))
	if err != nil {
		return nil, err
	}
	c, err := u.source.GetCampaign(ctx, campaignKey, u.since())
	if err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", campaignKey, err)
	}
	res, err := u.engine.Evaluate(*c)
	if err != nil {
		return nil, err
	}
	o, err := u.overrides.Set(ctx, campaignKey, res.ComputedClassification, class, memo)
	if err != nil {
		return nil, err
	}
	if o == nil {
		u.logger.Info("override cleared", slog.String("campaign", campaignKey))
	} else {
		u.logger.Info("override set",
			slog.String("campaign", campaignKey),
			slog.String("from", string(o.OriginalClassification)),
			slog.String("to", string(o.NewClassification)),
			slog.Time("expires_at", o.ExpiresAt))
	}
	return o, nil
}

// ClearOverride removes the campaign's override.
func (u *JudgmentUseCase) ClearOverride(ctx context.Context, campaignKey string) error {
	return u.overrides.Clear(ctx, campaignKey)
}

// since returns midnight, in the override timezone, LookbackDays ago.
func (u *JudgmentUseCase) since() time.Time {
	loc := u.overrides.Location()
	today := domain.DayOf(u.now(), loc)
	return today.Start(loc).AddDate(0, 0, -u.lookback)
}
