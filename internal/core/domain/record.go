package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidRecord is returned when a daily record carries a value that
// cannot take part in financial calculations (NaN or ±Inf).
var ErrInvalidRecord = errors.New("invalid daily record")

// DailyRecord is the performance of one campaign on one calendar date.
// Records are produced by the record source and never mutated afterwards.
type DailyRecord struct {
	Date    time.Time
	Spend   float64
	Revenue float64
	Profit  float64
	ROAS    float64 // revenue / spend * 100
	CV      float64 // conversions
	MCV     float64 // micro conversions
}

// NewDailyRecord builds a record from raw spend and revenue, deriving
// profit and ROAS.
func NewDailyRecord(date time.Time, spend, revenue, cv, mcv float64) DailyRecord {
	return DailyRecord{
		Date:    date,
		Spend:   spend,
		Revenue: revenue,
		Profit:  revenue - spend,
		ROAS:    ROAS(revenue, spend),
		CV:      cv,
		MCV:     mcv,
	}
}

// ROAS returns revenue/spend*100, or 0 when nothing was spent.
func ROAS(revenue, spend float64) float64 {
	if spend == 0 {
		return 0
	}
	return revenue / spend * 100
}

// Value returns the record's value for the given metric.
func (r DailyRecord) Value(m Metric) float64 {
	switch m {
	case MetricSpend:
		return r.Spend
	case MetricProfit:
		return r.Profit
	case MetricROAS:
		return r.ROAS
	case MetricCV:
		return r.CV
	case MetricMCV:
		return r.MCV
	default:
		return 0
	}
}

// Validate rejects records with non-finite numbers. Garbled source values
// are expected to be sanitised to 0 before they get here; anything that is
// still NaN or infinite is a caller bug and must not be coerced silently.
func (r DailyRecord) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"spend", r.Spend},
		{"revenue", r.Revenue},
		{"profit", r.Profit},
		{"roas", r.ROAS},
		{"cv", r.CV},
		{"mcv", r.MCV},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s on %s is %v", ErrInvalidRecord, f.name, r.Date.Format(time.DateOnly), f.v)
		}
	}
	return nil
}
