package port

import (
	"context"

	"mesa-judge/internal/core/domain"
)

// JudgmentUseCase defines the business operations exposed by the judgment
// engine. This interface is the primary port into the application domain.
type JudgmentUseCase interface {
	// Judge classifies the given campaigns, merges active overrides and
	// tallies the effective classifications. Invalid campaigns are reported
	// in Report.Failures and do not stop the run. An error is returned only
	// when the run as a whole fails, e.g. on cancellation.
	Judge(ctx context.Context, campaigns []domain.Campaign) (*domain.Report, error)

	// Run loads campaigns from the record source and judges them.
	Run(ctx context.Context) (*domain.Report, error)

	// DetectAnomalies evaluates every metric of the given campaigns and
	// returns only the anomalous findings, worst first.
	DetectAnomalies(ctx context.Context, campaigns []domain.Campaign) ([]domain.AnomalyFinding, error)

	// ScanAnomalies loads campaigns from the record source and detects
	// anomalies.
	ScanAnomalies(ctx context.Context) ([]domain.AnomalyFinding, error)

	// SetOverride reclassifies a campaign until the end of the day. When
	// the requested classification equals the computed one the existing
	// override is cleared and nil is returned.
	SetOverride(ctx context.Context, campaignKey string, class domain.Classification, memo string) (*domain.Override, error)

	// ClearOverride removes the campaign's override, if any.
	ClearOverride(ctx context.Context, campaignKey string) error
}
