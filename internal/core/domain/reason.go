package domain

import "fmt"

// ReasonKind identifies which rule produced a reason.
type ReasonKind string

const (
	ReasonConsecutiveLoss     ReasonKind = "consecutive_loss"
	ReasonLoss7DaysExceeded   ReasonKind = "loss_7d_exceeded"
	ReasonLowROAS             ReasonKind = "low_roas"
	ReasonProfit7DaysPositive ReasonKind = "profit_7d_positive"
	ReasonTodayProfitPositive ReasonKind = "today_profit_positive"
	ReasonROASAboveContinue   ReasonKind = "roas_above_continue"
	ReasonNoRuleMatched       ReasonKind = "no_rule_matched"
)

// Reason is a structured explanation attached to a classification. Days is
// set for streak reasons, Amount carries the profit or ROAS value that
// triggered the rule.
type Reason struct {
	Kind   ReasonKind `json:"kind"`
	Days   int        `json:"days,omitempty"`
	Amount float64    `json:"amount,omitempty"`
}

// ReasonRenderer turns a reason into display text.
type ReasonRenderer func(Reason) string

// RenderReasonEN is the default English renderer.
func RenderReasonEN(r Reason) string {
	switch r.Kind {
	case ReasonConsecutiveLoss:
		return fmt.Sprintf("%d consecutive loss days", r.Days)
	case ReasonLoss7DaysExceeded:
		return fmt.Sprintf("7-day loss exceeds threshold (%.0f)", r.Amount)
	case ReasonLowROAS:
		return fmt.Sprintf("low 7-day ROAS (%.1f%%)", r.Amount)
	case ReasonProfit7DaysPositive:
		return fmt.Sprintf("7-day profit is positive (%.0f)", r.Amount)
	case ReasonTodayProfitPositive:
		return fmt.Sprintf("today's profit is positive (%.0f)", r.Amount)
	case ReasonROASAboveContinue:
		return fmt.Sprintf("7-day ROAS above continue threshold (%.1f%%)", r.Amount)
	case ReasonNoRuleMatched:
		return "no rule matched"
	default:
		return string(r.Kind)
	}
}

// RenderReasons renders every reason with render, falling back to the
// English renderer when render is nil.
func RenderReasons(reasons []Reason, render ReasonRenderer) []string {
	if render == nil {
		render = RenderReasonEN
	}
	out := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = render(r)
	}
	return out
}
