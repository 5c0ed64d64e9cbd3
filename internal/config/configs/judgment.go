package configs

import "mesa-judge/internal/core/domain"

// Judgment holds the rule thresholds shared by all campaigns. Loss
// thresholds are in currency units and ROAS thresholds in percent. The
// defaults match domain.DefaultJudgmentConfig.
type Judgment struct {
	StopReConsecutiveLossDays      int     `env:"STOP_RE_CONSECUTIVE_LOSS_DAYS" envDefault:"3"`
	ReplaceNoReConsecutiveLossDays int     `env:"REPLACE_NO_RE_CONSECUTIVE_LOSS_DAYS" envDefault:"5"`
	LossThreshold7Days             float64 `env:"LOSS_THRESHOLD_7_DAYS" envDefault:"40000"`
	ROASThresholdStop              float64 `env:"ROAS_THRESHOLD_STOP" envDefault:"105"`
	ROASThresholdContinue          float64 `env:"ROAS_THRESHOLD_CONTINUE" envDefault:"120"`
	// RefreshMarker is the substring of a display name that flags a
	// refreshed creative. Matching is case-sensitive.
	RefreshMarker string `env:"REFRESH_MARKER" envDefault:"Re"`
	// LookbackDays is how many days of history are loaded per run.
	LookbackDays int `env:"LOOKBACK_DAYS" envDefault:"30"`
	// Schedule is a cron spec for periodic runs over the record source.
	// Empty disables them.
	Schedule string `env:"SCHEDULE"`
}

// ToDomain converts the section into the engine configuration.
func (c Judgment) ToDomain() domain.JudgmentConfig {
	return domain.JudgmentConfig{
		StopReConsecutiveLossDays:      c.StopReConsecutiveLossDays,
		ReplaceNoReConsecutiveLossDays: c.ReplaceNoReConsecutiveLossDays,
		LossThreshold7Days:             c.LossThreshold7Days,
		ROASThresholdStop:              c.ROASThresholdStop,
		ROASThresholdContinue:          c.ROASThresholdContinue,
	}
}
