package domain

import "fmt"

// Metric names a daily series the anomaly detector evaluates.
type Metric string

const (
	MetricSpend  Metric = "spend"
	MetricProfit Metric = "profit"
	MetricMCV    Metric = "mcv"
	MetricCV     Metric = "cv"
	MetricROAS   Metric = "roas"
)

// AllMetrics lists the metrics evaluated for every campaign.
var AllMetrics = []Metric{MetricSpend, MetricProfit, MetricMCV, MetricCV, MetricROAS}

// ProfitLike reports whether a move in m reflects returns rather than volume.
func (m Metric) ProfitLike() bool {
	return m == MetricProfit || m == MetricROAS
}

// Severity grades an anomaly.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities, higher is worse.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// AnomalyKind is the direction of an anomaly. Empty for normal values.
type AnomalyKind string

const (
	AnomalyNone  AnomalyKind = ""
	AnomalySpike AnomalyKind = "spike"
	AnomalyDrop  AnomalyKind = "drop"
)

// AnomalyFinding is the detector output for one metric of one campaign.
type AnomalyFinding struct {
	CampaignKey    string
	Metric         Metric
	CurrentValue   float64
	PreviousValue  float64
	Average7d      float64
	StdDev         float64
	ZScore         float64
	IsAnomaly      bool
	Kind           AnomalyKind
	Severity       Severity
	ChangePercent  float64
	Message        string
	Recommendation string
}

// MetricThresholds are the trigger thresholds for one metric.
type MetricThresholds struct {
	ZScore float64 `validate:"gt=0"`
	Change float64 `validate:"gt=0"`
}

// AnomalyConfig configures the detector. PerMetric overrides Default for
// the listed metrics.
type AnomalyConfig struct {
	Default       MetricThresholds
	PerMetric     map[Metric]MetricThresholds `validate:"dive"`
	MinDataPoints int                         `validate:"gte=1"`
	MeanWindow    int                         `validate:"gte=1"`
}

// DefaultAnomalyConfig returns the stock thresholds. Profit swings are
// graded more strictly than volume swings.
func DefaultAnomalyConfig() AnomalyConfig {
	return AnomalyConfig{
		Default: MetricThresholds{ZScore: 2.5, Change: 50},
		PerMetric: map[Metric]MetricThresholds{
			MetricProfit: {ZScore: 2, Change: 30},
		},
		MinDataPoints: 3,
		MeanWindow:    7,
	}
}

// Thresholds returns the thresholds that apply to m.
func (c AnomalyConfig) Thresholds(m Metric) MetricThresholds {
	if t, ok := c.PerMetric[m]; ok {
		return t
	}
	return c.Default
}

// Validate checks every threshold is positive.
func (c AnomalyConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
