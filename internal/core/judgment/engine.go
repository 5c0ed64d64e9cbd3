package judgment

import (
	"mesa-judge/internal/core/domain"
)

// Engine evaluates single campaigns against a fixed configuration.
type Engine struct {
	cfg     domain.JudgmentConfig
	refresh domain.RefreshDetector
}

// NewEngine validates cfg and returns an engine. A nil detector falls back
// to the default "Re" marker.
func NewEngine(cfg domain.JudgmentConfig, refresh domain.RefreshDetector) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if refresh == nil {
		refresh = domain.MarkerDetector{Marker: domain.DefaultRefreshMarker}
	}
	return &Engine{cfg: cfg, refresh: refresh}, nil
}

// Config returns the thresholds the engine was built with.
func (e *Engine) Config() domain.JudgmentConfig {
	return e.cfg
}

// Evaluate validates the campaign and computes its judgment. Only invalid
// input produces an error; any valid history yields a classification.
func (e *Engine) Evaluate(c domain.Campaign) (domain.JudgmentResult, error) {
	if err := c.Validate(); err != nil {
		return domain.JudgmentResult{}, err
	}

	w := NewWindow(c.Records)
	week := w.LastNDays(WindowDays)
	latest, _ := w.Latest()
	in := Input{
		IsCreativeRefreshed: e.refresh.IsCreativeRefreshed(c.DisplayName),
		TodayProfit:         latest.Profit,
		Week:                week,
		ConsecutiveLossDays: ConsecutiveLossDays(w),
	}
	class, reasons := Classify(in, e.cfg)

	return domain.JudgmentResult{
		CampaignKey:            c.Key,
		DisplayName:            c.DisplayName,
		MediaChannel:           c.MediaChannel,
		TodayProfit:            in.TodayProfit,
		Profit7Days:            week.TotalProfit,
		ROAS7Days:              week.ROAS,
		ConsecutiveLossDays:    in.ConsecutiveLossDays,
		ConsecutiveProfitDays:  ConsecutiveProfitDays(w),
		Classification:         class,
		ComputedClassification: class,
		Reasons:                reasons,
		IsCreativeRefreshed:    in.IsCreativeRefreshed,
	}, nil
}
