// Package anomaly flags abnormal day-over-day moves in campaign metrics.
// Findings are annotations only and never feed back into classification.
package anomaly

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/judgment"
)

// Severity cut-offs. Either statistic can escalate a finding.
const (
	criticalZScore = 4.0
	criticalChange = 100.0
	highZScore     = 3.0
	highChange     = 75.0
)

// Detector evaluates metric series against configured thresholds.
type Detector struct {
	cfg domain.AnomalyConfig
}

// NewDetector validates cfg and returns a detector.
func NewDetector(cfg domain.AnomalyConfig) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg}, nil
}

// Detect evaluates current against history, which is ordered oldest to
// newest. The mean covers the trailing MeanWindow values while the
// standard deviation covers the whole history.
func (d *Detector) Detect(campaignKey string, metric domain.Metric, current float64, history []float64) domain.AnomalyFinding {
	f := domain.AnomalyFinding{
		CampaignKey:  campaignKey,
		Metric:       metric,
		CurrentValue: current,
		Kind:         domain.AnomalyNone,
		Severity:     domain.SeverityLow,
	}
	if len(history) < d.cfg.MinDataPoints {
		f.Message = fmt.Sprintf("%s: insufficient data (%d of %d points)", metric, len(history), d.cfg.MinDataPoints)
		return f
	}

	recent := history[len(history)-min(d.cfg.MeanWindow, len(history)):]
	f.Average7d = stat.Mean(recent, nil)
	_, variance := stat.PopMeanVariance(history, nil)
	f.StdDev = math.Sqrt(variance)
	if f.StdDev > 0 {
		f.ZScore = (current - f.Average7d) / f.StdDev
	}

	f.PreviousValue = history[len(history)-1]
	f.ChangePercent = changePercent(current, f.PreviousValue)

	th := d.cfg.Thresholds(metric)
	zHit := math.Abs(f.ZScore) > th.ZScore
	changeHit := math.Abs(f.ChangePercent) > th.Change
	if !zHit && !changeHit {
		f.Message = fmt.Sprintf("%s within normal range", metric)
		return f
	}

	f.IsAnomaly = true
	trigger := f.ChangePercent
	if zHit {
		trigger = f.ZScore
	}
	if trigger >= 0 {
		f.Kind = domain.AnomalySpike
	} else {
		f.Kind = domain.AnomalyDrop
	}
	f.Severity = grade(f.ZScore, f.ChangePercent)
	f.Message = fmt.Sprintf("%s %s: %.2f vs %.2f (%+.1f%%, z=%.2f)",
		metric, f.Kind, current, f.PreviousValue, f.ChangePercent, f.ZScore)
	f.Recommendation = recommend(f.Kind, metric.ProfitLike())
	return f
}

// DetectCampaign evaluates every metric of a campaign. The most recent
// record is the current value and the earlier ones form the history.
func (d *Detector) DetectCampaign(c domain.Campaign) []domain.AnomalyFinding {
	w := judgment.NewWindow(c.Records)
	findings := make([]domain.AnomalyFinding, 0, len(domain.AllMetrics))
	for _, m := range domain.AllMetrics {
		series := w.Series(m)
		if len(series) == 0 {
			findings = append(findings, d.Detect(c.Key, m, 0, nil))
			continue
		}
		last := len(series) - 1
		findings = append(findings, d.Detect(c.Key, m, series[last], series[:last]))
	}
	return findings
}

// Rank returns the anomalous findings ordered by severity, then by the
// size of the move. Ties keep their input order.
func Rank(findings []domain.AnomalyFinding) []domain.AnomalyFinding {
	out := make([]domain.AnomalyFinding, 0, len(findings))
	for _, f := range findings {
		if f.IsAnomaly {
			out = append(out, f)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.AnomalyFinding) int {
		if c := cmp.Compare(b.Severity.Rank(), a.Severity.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(math.Abs(b.ChangePercent), math.Abs(a.ChangePercent))
	})
	return out
}

func changePercent(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / math.Abs(previous) * 100
}

func grade(z, change float64) domain.Severity {
	z, change = math.Abs(z), math.Abs(change)
	switch {
	case z > criticalZScore || change > criticalChange:
		return domain.SeverityCritical
	case z > highZScore || change > highChange:
		return domain.SeverityHigh
	default:
		return domain.SeverityMedium
	}
}

func recommend(kind domain.AnomalyKind, profitLike bool) string {
	switch {
	case kind == domain.AnomalySpike && profitLike:
		return "Returns jumped. Confirm tracking, then consider raising the budget while it holds."
	case kind == domain.AnomalyDrop && profitLike:
		return "Returns fell sharply. Review creatives and landing page, and consider pausing."
	case kind == domain.AnomalySpike:
		return "Volume jumped. Check for bid or budget changes and watch profitability."
	case kind == domain.AnomalyDrop:
		return "Volume fell sharply. Check delivery status, budget caps and tracking."
	default:
		return ""
	}
}
