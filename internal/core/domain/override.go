package domain

import "time"

// Override is a manual reclassification issued by an operator. It lives
// until the end of the calendar day it was created on, in the reference
// timezone of the override store.
type Override struct {
	ID                     string
	CampaignKey            string
	OriginalClassification Classification
	NewClassification      Classification
	CreatedAt              time.Time
	ExpiresAt              time.Time
	Memo                   string
}

// CalendarDay is a date without a time of day. Converting to and from
// instants always goes through an explicit location.
type CalendarDay struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t as observed in loc.
func DayOf(t time.Time, loc *time.Location) CalendarDay {
	y, m, d := t.In(loc).Date()
	return CalendarDay{Year: y, Month: m, Day: d}
}

// Start returns midnight of the day in loc.
func (d CalendarDay) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// End returns 23:59:59.999 of the day in loc. DST shifts are resolved by
// time.Date, so the result is correct on 23 and 25 hour days.
func (d CalendarDay) End(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 23, 59, 59, int(999*time.Millisecond), loc)
}

// String formats the day as YYYY-MM-DD.
func (d CalendarDay) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// OverrideCutoff returns the instant after which an override created at
// createdAt is no longer valid.
func OverrideCutoff(createdAt time.Time, loc *time.Location) time.Time {
	return DayOf(createdAt, loc).End(loc)
}
