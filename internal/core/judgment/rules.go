package judgment

import (
	"math"

	"mesa-judge/internal/core/domain"
)

// Input is everything the rules look at for one campaign.
type Input struct {
	IsCreativeRefreshed bool
	TodayProfit         float64
	Week                domain.Aggregate
	ConsecutiveLossDays int
}

// Classify applies the rules in precedence order: STOP for refreshed
// creatives, REPLACE for the others, then CONTINUE, then CHECK. The first
// group with at least one satisfied condition wins and reports every
// condition of that group that held.
func Classify(in Input, cfg domain.JudgmentConfig) (domain.Classification, []domain.Reason) {
	if in.IsCreativeRefreshed {
		if reasons := failing(in, cfg.StopReConsecutiveLossDays, cfg); len(reasons) > 0 {
			return domain.ClassificationStop, reasons
		}
	} else {
		if reasons := failing(in, cfg.ReplaceNoReConsecutiveLossDays, cfg); len(reasons) > 0 {
			return domain.ClassificationReplace, reasons
		}
	}

	var reasons []domain.Reason
	if in.Week.TotalProfit > 0 {
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonProfit7DaysPositive, Amount: in.Week.TotalProfit})
	}
	if in.TodayProfit > 0 {
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonTodayProfitPositive, Amount: in.TodayProfit})
	}
	if in.Week.ROAS >= cfg.ROASThresholdContinue {
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonROASAboveContinue, Amount: in.Week.ROAS})
	}
	if len(reasons) > 0 {
		return domain.ClassificationContinue, reasons
	}

	return domain.ClassificationCheck, []domain.Reason{{Kind: domain.ReasonNoRuleMatched}}
}

// failing evaluates the three shared STOP/REPLACE conditions with the given
// streak threshold. A window without spend has no ROAS, so the low-ROAS
// condition only applies once something was spent.
func failing(in Input, streakDays int, cfg domain.JudgmentConfig) []domain.Reason {
	var reasons []domain.Reason
	if in.ConsecutiveLossDays > 0 && in.ConsecutiveLossDays >= streakDays {
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonConsecutiveLoss, Days: in.ConsecutiveLossDays})
	}
	if p := in.Week.TotalProfit; p < 0 && math.Abs(p) >= cfg.LossThreshold7Days {
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonLoss7DaysExceeded, Amount: p})
	}
	if in.Week.TotalSpend > 0 && in.Week.ROAS < cfg.ROASThresholdStop {
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonLowROAS, Amount: in.Week.ROAS})
	}
	return reasons
}
