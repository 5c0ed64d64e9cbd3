package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidConfig is returned when thresholds fail validation.
	ErrInvalidConfig = errors.New("invalid judgment config")
	// ErrInvalidClassification is returned for unknown classification names.
	ErrInvalidClassification = errors.New("invalid classification")
)

var validate = validator.New()

// Classification is the verdict for a campaign on a given run.
type Classification string

const (
	ClassificationStop     Classification = "STOP"
	ClassificationReplace  Classification = "REPLACE"
	ClassificationContinue Classification = "CONTINUE"
	ClassificationCheck    Classification = "CHECK"
)

// ParseClassification accepts a classification name in any case.
func ParseClassification(s string) (Classification, error) {
	c := Classification(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case ClassificationStop, ClassificationReplace, ClassificationContinue, ClassificationCheck:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidClassification, s)
}

// JudgmentConfig holds the thresholds shared by every campaign in a run.
// Loss thresholds are in currency units, ROAS thresholds in percent.
type JudgmentConfig struct {
	StopReConsecutiveLossDays      int     `json:"stop_re_consecutive_loss_days" validate:"gte=0"`
	ReplaceNoReConsecutiveLossDays int     `json:"replace_no_re_consecutive_loss_days" validate:"gte=0"`
	LossThreshold7Days             float64 `json:"loss_threshold_7_days" validate:"gte=0"`
	ROASThresholdStop              float64 `json:"roas_threshold_stop" validate:"gte=0"`
	ROASThresholdContinue          float64 `json:"roas_threshold_continue" validate:"gte=0"`
}

// DefaultJudgmentConfig returns the thresholds used when nothing is configured.
func DefaultJudgmentConfig() JudgmentConfig {
	return JudgmentConfig{
		StopReConsecutiveLossDays:      3,
		ReplaceNoReConsecutiveLossDays: 5,
		LossThreshold7Days:             40000,
		ROASThresholdStop:              105,
		ROASThresholdContinue:          120,
	}
}

// Validate rejects negative or non-finite thresholds.
func (c JudgmentConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Aggregate is a rolling sum over the most recent days of a campaign.
type Aggregate struct {
	TotalSpend   float64
	TotalRevenue float64
	TotalProfit  float64
	ROAS         float64
	DaysCounted  int
}

// JudgmentResult is the per-campaign output of a run. Classification is the
// effective verdict; ComputedClassification keeps what the rules decided
// before any manual override was merged in.
type JudgmentResult struct {
	CampaignKey            string
	DisplayName            string
	MediaChannel           string
	TodayProfit            float64
	Profit7Days            float64
	ROAS7Days              float64
	ConsecutiveLossDays    int
	ConsecutiveProfitDays  int
	Classification         Classification
	ComputedClassification Classification
	Reasons                []Reason
	IsCreativeRefreshed    bool
	Override               *Override
}

// Overridden reports whether a manual override decided the classification.
func (r JudgmentResult) Overridden() bool {
	return r.Override != nil
}

// Summary counts effective classifications.
type Summary struct {
	Stop     int `json:"stop"`
	Replace  int `json:"replace"`
	Continue int `json:"continue"`
	Check    int `json:"check"`
	Total    int `json:"total"`
}

// Tally builds a summary from the effective classification of results.
func Tally(results []JudgmentResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Classification {
		case ClassificationStop:
			s.Stop++
		case ClassificationReplace:
			s.Replace++
		case ClassificationContinue:
			s.Continue++
		case ClassificationCheck:
			s.Check++
		}
		s.Total++
	}
	return s
}

// CampaignFailure records a campaign skipped because its input was invalid.
type CampaignFailure struct {
	CampaignKey string
	Err         error
}

// Report is the outcome of a judgment run.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Results     []JudgmentResult
	Summary     Summary
	Failures    []CampaignFailure
}
