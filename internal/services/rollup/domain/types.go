// Package domain defines the core types and interfaces for the rollup service
package domain

import (
	"time"

	"timeclock/internal/core/timecalc"
)

// SummaryID builds the deterministic identifier for a user-day rollup
func SummaryID(uid, workDate string) string { return uid + "_" + workDate }

// PunchRef is one completed punch pair inside a summary, kept in punch-in
// order. The json tags double as the stored jsonb shape
type PunchRef struct {
	AttendanceID string    `json:"attendanceId"`
	PunchIn      time.Time `json:"punchIn"`
	PunchOut     time.Time `json:"punchOut"`
}

// Summary is the per-(uid, workDate) rollup. It exists only while the day
// has at least one completed, non-voided punch
type Summary struct {
	ID               string
	UID              string
	WorkDate         string
	RegularHours     float64
	OvertimeHours    float64
	NightDiffHours   float64
	TotalWorkedHours float64
	LateMinutes      int
	UndertimeMinutes int
	Punches          []PunchRef
	UpdatedAt        time.Time
}

// Totals aggregates summary metrics across a date range
type Totals struct {
	RegularHours     float64
	OvertimeHours    float64
	NightDiffHours   float64
	TotalWorkedHours float64
	LateMinutes      int
	UndertimeMinutes int
}

// WeekReport is one user's range report: per-day summaries plus range totals
type WeekReport struct {
	StartDate string
	EndDate   string
	Totals    Totals
	Days      []Summary
}

// EmployeeDay is a daily summary enriched with display fields for admin reports
type EmployeeDay struct {
	Summary
	FirstName  string
	LastName   string
	Department string
	Position   string
}

// EmployeeWeek is one employee's slice of an admin range report
type EmployeeWeek struct {
	UID        string
	FirstName  string
	LastName   string
	Department string
	Position   string
	Totals     Totals
	Days       []Summary
}

// PunchRecord is the slice of an attendance row that aggregation reads.
// Metrics is nil unless the punch pair completed
type PunchRecord struct {
	AttendanceID string
	PunchIn      time.Time
	PunchOut     *time.Time
	Status       string
	Metrics      *timecalc.Metrics
}
