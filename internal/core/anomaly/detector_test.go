package anomaly

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-judge/internal/core/domain"
)

func newDetector(t *testing.T) *Detector {
	t.Helper()
	d, err := NewDetector(domain.DefaultAnomalyConfig())
	require.NoError(t, err)
	return d
}

func TestDetect_FlatHistoryFallsBackToChangePercent(t *testing.T) {
	d := newDetector(t)
	f := d.Detect("c1", domain.MetricSpend, 1000, []float64{100, 100, 100, 100, 100, 100, 100})

	assert.Zero(t, f.StdDev)
	assert.Zero(t, f.ZScore)
	assert.InDelta(t, 100, f.Average7d, 1e-9)
	assert.InDelta(t, 100, f.PreviousValue, 1e-9)
	assert.InDelta(t, 900, f.ChangePercent, 1e-9)
	assert.True(t, f.IsAnomaly)
	assert.Equal(t, domain.AnomalySpike, f.Kind)
	assert.Equal(t, domain.SeverityCritical, f.Severity)
	assert.NotEmpty(t, f.Recommendation)
}

func TestDetect_InsufficientData(t *testing.T) {
	d := newDetector(t)
	for _, current := range []float64{0, 1e9, -1e9} {
		f := d.Detect("c1", domain.MetricProfit, current, []float64{1, 2})
		assert.False(t, f.IsAnomaly)
		assert.Equal(t, domain.SeverityLow, f.Severity)
		assert.Equal(t, domain.AnomalyNone, f.Kind)
		assert.Contains(t, f.Message, "insufficient data")
	}
}

func TestDetect_MeanUsesTrailingWindowStdDevUsesAll(t *testing.T) {
	d := newDetector(t)
	history := []float64{0, 0, 0, 10, 10, 10, 10, 10, 10, 10}
	f := d.Detect("c1", domain.MetricCV, 10, history)

	assert.InDelta(t, 10, f.Average7d, 1e-9)
	// Population variance of three 0s and seven 10s is 21.
	assert.InDelta(t, math.Sqrt(21), f.StdDev, 1e-9)
	assert.Zero(t, f.ZScore)
	assert.False(t, f.IsAnomaly)
	assert.Equal(t, domain.SeverityLow, f.Severity)
}

func TestDetect_ZScoreDrop(t *testing.T) {
	d := newDetector(t)
	// Mean 100, population stddev about 9.26: 60 sits more than four
	// deviations below, while the 40% drop alone would not trip the
	// volume threshold.
	history := []float64{90, 110, 90, 110, 90, 110, 100}
	f := d.Detect("c1", domain.MetricMCV, 60, history)

	require.True(t, f.IsAnomaly)
	assert.Equal(t, domain.AnomalyDrop, f.Kind)
	assert.Less(t, f.ZScore, -2.5)
	assert.InDelta(t, -40, f.ChangePercent, 1e-9)
}

func TestDetect_ProfitThresholdsAreStricter(t *testing.T) {
	d := newDetector(t)
	history := []float64{100, 100, 100}

	spend := d.Detect("c1", domain.MetricSpend, 140, history)
	assert.False(t, spend.IsAnomaly)

	profit := d.Detect("c1", domain.MetricProfit, 140, history)
	require.True(t, profit.IsAnomaly)
	assert.Equal(t, domain.SeverityMedium, profit.Severity)
	assert.Equal(t, domain.AnomalySpike, profit.Kind)
}

func TestDetect_SeverityGrades(t *testing.T) {
	d := newDetector(t)
	history := []float64{100, 100, 100}
	tests := []struct {
		current float64
		want    domain.Severity
	}{
		{160, domain.SeverityMedium},
		{180, domain.SeverityHigh},
		{201, domain.SeverityCritical},
		{10, domain.SeverityHigh}, // -90%
	}
	for _, tt := range tests {
		f := d.Detect("c1", domain.MetricSpend, tt.current, history)
		assert.True(t, f.IsAnomaly, "current=%v", tt.current)
		assert.Equal(t, tt.want, f.Severity, "current=%v", tt.current)
	}
}

func TestDetect_PreviousZero(t *testing.T) {
	d := newDetector(t)

	f := d.Detect("c1", domain.MetricCV, 5, []float64{0, 0, 0})
	assert.InDelta(t, 100, f.ChangePercent, 1e-9)
	assert.True(t, f.IsAnomaly)

	f = d.Detect("c1", domain.MetricProfit, -5, []float64{0, 0, 0})
	assert.Zero(t, f.ChangePercent)
	assert.False(t, f.IsAnomaly)
}

func TestDetect_NegativePreviousUsesAbsoluteBase(t *testing.T) {
	d := newDetector(t)
	f := d.Detect("c1", domain.MetricProfit, -50, []float64{-100, -100, -100})
	assert.InDelta(t, 50, f.ChangePercent, 1e-9)
	assert.Equal(t, domain.AnomalySpike, f.Kind)
}

func TestDetectCampaign(t *testing.T) {
	d := newDetector(t)
	var records []domain.DailyRecord
	for i := 1; i <= 7; i++ {
		records = append(records, domain.NewDailyRecord(time.Date(2024, 5, i, 0, 0, 0, 0, time.UTC), 100, 150, 10, 50))
	}
	records = append(records, domain.NewDailyRecord(time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), 400, 150, 10, 50))

	findings := d.DetectCampaign(domain.Campaign{Key: "c1", Records: records})
	require.Len(t, findings, len(domain.AllMetrics))

	byMetric := map[domain.Metric]domain.AnomalyFinding{}
	for _, f := range findings {
		byMetric[f.Metric] = f
	}
	assert.True(t, byMetric[domain.MetricSpend].IsAnomaly)
	assert.Equal(t, domain.AnomalySpike, byMetric[domain.MetricSpend].Kind)
	assert.True(t, byMetric[domain.MetricProfit].IsAnomaly)
	assert.Equal(t, domain.AnomalyDrop, byMetric[domain.MetricProfit].Kind)
	assert.True(t, byMetric[domain.MetricROAS].IsAnomaly)
	assert.False(t, byMetric[domain.MetricCV].IsAnomaly)
	assert.False(t, byMetric[domain.MetricMCV].IsAnomaly)
}

func TestDetectCampaign_NoRecords(t *testing.T) {
	d := newDetector(t)
	for _, f := range d.DetectCampaign(domain.Campaign{Key: "empty"}) {
		assert.False(t, f.IsAnomaly)
	}
}

func TestRank(t *testing.T) {
	findings := []domain.AnomalyFinding{
		{Metric: domain.MetricCV, IsAnomaly: true, Severity: domain.SeverityMedium, ChangePercent: 60},
		{Metric: domain.MetricSpend, IsAnomaly: false, Severity: domain.SeverityLow},
		{Metric: domain.MetricProfit, IsAnomaly: true, Severity: domain.SeverityCritical, ChangePercent: -150},
		{Metric: domain.MetricROAS, IsAnomaly: true, Severity: domain.SeverityMedium, ChangePercent: -70},
		{Metric: domain.MetricMCV, IsAnomaly: true, Severity: domain.SeverityHigh, ChangePercent: 80},
	}
	ranked := Rank(findings)
	require.Len(t, ranked, 4)
	got := make([]domain.Metric, len(ranked))
	for i, f := range ranked {
		got[i] = f.Metric
	}
	assert.Equal(t, []domain.Metric{domain.MetricProfit, domain.MetricMCV, domain.MetricROAS, domain.MetricCV}, got)
}

func TestNewDetector_Validates(t *testing.T) {
	cfg := domain.DefaultAnomalyConfig()
	cfg.MinDataPoints = 0
	_, err := NewDetector(cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
