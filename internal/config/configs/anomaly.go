package configs

import "mesa-judge/internal/core/domain"

// Anomaly configures the anomaly detector. ZScoreThreshold and
// ChangeThreshold apply to every metric except profit, which uses the
// stricter Profit* pair.
type Anomaly struct {
	ZScoreThreshold       float64 `env:"Z_SCORE_THRESHOLD" envDefault:"2.5"`
	ChangeThreshold       float64 `env:"CHANGE_THRESHOLD" envDefault:"50"`
	ProfitZScoreThreshold float64 `env:"PROFIT_Z_SCORE_THRESHOLD" envDefault:"2"`
	ProfitChangeThreshold float64 `env:"PROFIT_CHANGE_THRESHOLD" envDefault:"30"`
	MinDataPoints         int     `env:"MIN_DATA_POINTS" envDefault:"3"`
	MeanWindow            int     `env:"MEAN_WINDOW" envDefault:"7"`
}

// ToDomain converts the section into the detector configuration.
func (c Anomaly) ToDomain() domain.AnomalyConfig {
	return domain.AnomalyConfig{
		Default: domain.MetricThresholds{ZScore: c.ZScoreThreshold, Change: c.ChangeThreshold},
		PerMetric: map[domain.Metric]domain.MetricThresholds{
			domain.MetricProfit: {ZScore: c.ProfitZScoreThreshold, Change: c.ProfitChangeThreshold},
		},
		MinDataPoints: c.MinDataPoints,
		MeanWindow:    c.MeanWindow,
	}
}
