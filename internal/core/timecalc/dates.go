package timecalc

import (
	"math"
	"time"
)

// WorkDateOf returns the local calendar date of t as YYYY-MM-DD
func (e *Engine) WorkDateOf(t time.Time) string {
	return t.In(e.loc).Format(DateLayout)
}

// TodayUTC formats now's UTC calendar date as YYYY-MM-DD
func TodayUTC(now time.Time) string { return now.UTC().Format(DateLayout) }

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// RangeUTC expands two YYYY-MM-DD dates into the inclusive UTC instant range
// [startDate 00:00:00.000Z, endDate 23:59:59.999Z]
func RangeUTC(startDate, endDate string) (time.Time, time.Time, error) {
	s, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	en, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, en.AddDate(0, 0, 1).Add(-time.Millisecond), nil
}

// DefaultWeekUTC returns the Monday-to-Sunday week enclosing now's UTC date
// Sunday counts as the seventh day of the week it closes, not the first of
// the next one
func DefaultWeekUTC(now time.Time) (startDate, endDate string) {
	day := int(now.UTC().Weekday())
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	monday := now.UTC().AddDate(0, 0, diff)
	return monday.Format(DateLayout), monday.AddDate(0, 0, 6).Format(DateLayout)
}

// AddHours accumulates two 2dp hour values, re-rounding after the addition
// so repeated adds keep payroll-display precision
func AddHours(a, b float64) float64 {
	return math.Round((a+b)*100) / 100
}
