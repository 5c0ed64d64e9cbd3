package httpadapter

import (
	"time"

	"mesa-judge/internal/core/domain"
)

type reportResponse struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     domain.Summary    `json:"summary"`
	Results     []resultResponse  `json:"results"`
	Failures    []failureResponse `json:"failures,omitempty"`
}

type resultResponse struct {
	CampaignKey            string            `json:"campaign_key"`
	DisplayName            string            `json:"display_name"`
	MediaChannel           string            `json:"media_channel,omitempty"`
	Classification         string            `json:"classification"`
	ComputedClassification string            `json:"computed_classification"`
	TodayProfit            float64           `json:"today_profit"`
	Profit7Days            float64           `json:"profit_7d"`
	ROAS7Days              float64           `json:"roas_7d"`
	ConsecutiveLossDays    int               `json:"consecutive_loss_days"`
	ConsecutiveProfitDays  int               `json:"consecutive_profit_days"`
	IsCreativeRefreshed    bool              `json:"is_creative_refreshed"`
	Reasons                []domain.Reason   `json:"reasons"`
	ReasonText             []string          `json:"reason_text"`
	Override               *overrideResponse `json:"override,omitempty"`
}

type failureResponse struct {
	CampaignKey string `json:"campaign_key"`
	Error       string `json:"error"`
}

type overrideResponse struct {
	ID                     string    `json:"id"`
	CampaignKey            string    `json:"campaign_key"`
	OriginalClassification string    `json:"original_classification"`
	NewClassification      string    `json:"new_classification"`
	CreatedAt              time.Time `json:"created_at"`
	ExpiresAt              time.Time `json:"expires_at"`
	Memo                   string    `json:"memo,omitempty"`
}

type anomalyResponse struct {
	CampaignKey    string  `json:"campaign_key"`
	Metric         string  `json:"metric"`
	Kind           string  `json:"kind"`
	Severity       string  `json:"severity"`
	CurrentValue   float64 `json:"current_value"`
	PreviousValue  float64 `json:"previous_value"`
	Average7d      float64 `json:"average_7d"`
	StdDev         float64 `json:"std_dev"`
	ZScore         float64 `json:"z_score"`
	ChangePercent  float64 `json:"change_percent"`
	Message        string  `json:"message"`
	Recommendation string  `json:"recommendation"`
}

// overrideRequest is the body of PUT /overrides/{key}.
type overrideRequest struct {
	Classification string `json:"classification" validate:"required"`
	Memo           string `json:"memo" validate:"max=500"`
}

// batchRequest is the body of POST /judgments and POST /anomalies.
type batchRequest struct {
	Campaigns []campaignRequest `json:"campaigns" validate:"required,dive"`
}

type campaignRequest struct {
	Key          string          `json:"key" validate:"required"`
	DisplayName  string          `json:"display_name"`
	MediaChannel string          `json:"media_channel"`
	Records      []recordRequest `json:"records" validate:"dive"`
}

type recordRequest struct {
	Date    string  `json:"date" validate:"required,datetime=2006-01-02"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	CV      float64 `json:"cv"`
	MCV     float64 `json:"mcv"`
}

func (b batchRequest) toDomain() []domain.Campaign {
	out := make([]domain.Campaign, len(b.Campaigns))
	for i, c := range b.Campaigns {
		records := make([]domain.DailyRecord, 0, len(c.Records))
		for _, r := range c.Records {
			// validated by the datetime tag
			date, _ := time.Parse(time.DateOnly, r.Date)
			records = append(records, domain.NewDailyRecord(date, r.Spend, r.Revenue, r.CV, r.MCV))
		}
		out[i] = domain.Campaign{
			Key:          c.Key,
			DisplayName:  c.DisplayName,
			MediaChannel: c.MediaChannel,
			Records:      records,
		}
	}
	return out
}

func newOverrideResponse(o *domain.Override) *overrideResponse {
	if o == nil {
		return nil
	}
	return &overrideResponse{
		ID:                     o.ID,
		CampaignKey:            o.CampaignKey,
		OriginalClassification: string(o.OriginalClassification),
		NewClassification:      string(o.NewClassification),
		CreatedAt:              o.CreatedAt,
		ExpiresAt:              o.ExpiresAt,
		Memo:                   o.Memo,
	}
}

func newReportResponse(report *domain.Report, render domain.ReasonRenderer) reportResponse {
	resp := reportResponse{
		RunID:       report.RunID,
		GeneratedAt: report.GeneratedAt,
		Summary:     report.Summary,
		Results:     make([]resultResponse, len(report.Results)),
	}
	for i, r := range report.Results {
		reasons := r.Reasons
		if reasons == nil {
			reasons = []domain.Reason{}
		}
		resp.Results[i] = resultResponse{
			CampaignKey:            r.CampaignKey,
			DisplayName:            r.DisplayName,
			MediaChannel:           r.MediaChannel,
			Classification:         string(r.Classification),
			ComputedClassification: string(r.ComputedClassification),
			TodayProfit:            r.TodayProfit,
			Profit7Days:            r.Profit7Days,
			ROAS7Days:              r.ROAS7Days,
			ConsecutiveLossDays:    r.ConsecutiveLossDays,
			ConsecutiveProfitDays:  r.ConsecutiveProfitDays,
			IsCreativeRefreshed:    r.IsCreativeRefreshed,
			Reasons:                reasons,
			ReasonText:             domain.RenderReasons(reasons, render),
			Override:               newOverrideResponse(r.Override),
		}
	}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, failureResponse{CampaignKey: f.CampaignKey, Error: f.Err.Error()})
	}
	return resp
}

func newAnomalyResponses(findings []domain.AnomalyFinding) []anomalyResponse {
	out := make([]anomalyResponse, len(findings))
	for i, f := range findings {
		out[i] = anomalyResponse{
			CampaignKey:    f.CampaignKey,
			Metric:         string(f.Metric),
			Kind:           string(f.Kind),
			Severity:       string(f.Severity),
			CurrentValue:   f.CurrentValue,
			PreviousValue:  f.PreviousValue,
			Average7d:      f.Average7d,
			StdDev:         f.StdDev,
			ZScore:         f.ZScore,
			ChangePercent:  f.ChangePercent,
			Message:        f.Message,
			Recommendation: f.Recommendation,
		}
	}
	return out
}
