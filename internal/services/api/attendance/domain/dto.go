// Package domain holds DTOs for the attendance http surface
package domain

import (
	"time"

	"timeclock/internal/core/timecalc"
	ptime "timeclock/internal/platform/time"
	attdom "timeclock/internal/services/attendance/domain"
	rollupdom "timeclock/internal/services/rollup/domain"
)

// VoidedSentinel is the punchOut value cancelled punches publish
const VoidedSentinel = "VOIDED"

// RecordDTO is the wire view of one punch record
type RecordDTO struct {
	ID      string    `json:"id" example:"b51d4f0e-8a2c-4f6d-9e3b-0c7a1d92e845"`
	UID     string    `json:"uid" example:"7f2c3a9e-1d44-4a6b-9c0f-5e8b2d711c3a"`
	PunchIn time.Time `json:"punchIn" example:"2024-01-15T01:02:03Z"`

	// PunchOut is null while the punch is open, the string "VOIDED" for
	// cancelled punches, and an RFC3339 instant once closed
	PunchOut *string `json:"punchOut" example:"2024-01-15T10:02:03Z"`

	Metrics     *timecalc.Metrics `json:"metrics"`
	Voided      bool              `json:"voided,omitempty"`
	VoidedAt    *time.Time        `json:"voidedAt,omitempty"`
	VoidReason  string            `json:"voidReason,omitempty" example:"Cancelled by user"`
	AdminEdited bool              `json:"adminEdited"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// RecordView maps an attendance record onto the wire shape
func RecordView(rec attdom.Record) RecordDTO {
	out := RecordDTO{
		ID:          rec.ID,
		UID:         rec.UID,
		PunchIn:     rec.PunchIn.UTC(),
		Metrics:     rec.Metrics,
		AdminEdited: rec.AdminEdited,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	switch rec.Status {
	case attdom.StatusVoided:
		v := VoidedSentinel
		out.PunchOut = &v
		out.Voided = true
		out.VoidedAt = ptime.Ptr(rec.VoidedAt)
		out.VoidReason = rec.VoidReason
	case attdom.StatusClosed:
		if rec.PunchOut != nil {
			s := rec.PunchOut.UTC().Format(time.RFC3339Nano)
			out.PunchOut = &s
		}
	}
	return out
}

// RecordViews maps a record slice, preserving order
func RecordViews(recs []attdom.Record) []RecordDTO {
	out := make([]RecordDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, RecordView(rec))
	}
	return out
}

// SummaryDTO is the wire view of one user-day rollup
type SummaryDTO struct {
	ID               string               `json:"id" example:"7f2c3a9e-1d44-4a6b-9c0f-5e8b2d711c3a_2024-01-15"`
	UID              string               `json:"uid" example:"7f2c3a9e-1d44-4a6b-9c0f-5e8b2d711c3a"`
	WorkDate         string               `json:"workDate" example:"2024-01-15"`
	RegularHours     float64              `json:"regularHours" example:"8"`
	OvertimeHours    float64              `json:"overtimeHours" example:"1.25"`
	NightDiffHours   float64              `json:"nightDiffHours" example:"0"`
	TotalWorkedHours float64              `json:"totalWorkedHours" example:"9.25"`
	LateMinutes      int                  `json:"lateMinutes" example:"5"`
	UndertimeMinutes int                  `json:"undertimeMinutes" example:"0"`
	Punches          []rollupdom.PunchRef `json:"punches"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// SummaryView maps a rollup summary onto the wire shape
func SummaryView(s rollupdom.Summary) SummaryDTO {
	return SummaryDTO{
		ID:               s.ID,
		UID:              s.UID,
		WorkDate:         s.WorkDate,
		RegularHours:     s.RegularHours,
		OvertimeHours:    s.OvertimeHours,
		NightDiffHours:   s.NightDiffHours,
		TotalWorkedHours: s.TotalWorkedHours,
		LateMinutes:      s.LateMinutes,
		UndertimeMinutes: s.UndertimeMinutes,
		Punches:          s.Punches,
		UpdatedAt:        s.UpdatedAt,
	}
}

// SummaryViews maps a summary slice, preserving order
func SummaryViews(sums []rollupdom.Summary) []SummaryDTO {
	out := make([]SummaryDTO, 0, len(sums))
	for _, s := range sums {
		out = append(out, SummaryView(s))
	}
	return out
}

// TotalsDTO aggregates summary metrics across a date range
type TotalsDTO struct {
	RegularHours     float64 `json:"regularHours" example:"40"`
	OvertimeHours    float64 `json:"overtimeHours" example:"2.5"`
	NightDiffHours   float64 `json:"nightDiffHours" example:"0"`
	TotalWorkedHours float64 `json:"totalWorkedHours" example:"42.5"`
	LateMinutes      int     `json:"lateMinutes" example:"10"`
	UndertimeMinutes int     `json:"undertimeMinutes" example:"0"`
}

// TotalsView maps rollup totals onto the wire shape
func TotalsView(t rollupdom.Totals) TotalsDTO {
	return TotalsDTO{
		RegularHours:     t.RegularHours,
		OvertimeHours:    t.OvertimeHours,
		NightDiffHours:   t.NightDiffHours,
		TotalWorkedHours: t.TotalWorkedHours,
		LateMinutes:      t.LateMinutes,
		UndertimeMinutes: t.UndertimeMinutes,
	}
}

// StatusResponse is the employee dashboard snapshot
// openPunch and todaySummary are null when absent
type StatusResponse struct {
	PunchedIn    bool        `json:"punchedIn" example:"true"`
	OpenPunch    *RecordDTO  `json:"openPunch"`
	TodaySummary *SummaryDTO `json:"todaySummary"`
}

// PunchInResponse acknowledges a new open punch
type PunchInResponse struct {
	ID      string    `json:"id" example:"b51d4f0e-8a2c-4f6d-9e3b-0c7a1d92e845"`
	PunchIn time.Time `json:"punchIn" example:"2024-01-15T01:02:03Z"`
}

// PunchOutResponse acknowledges a closed punch with its metrics
type PunchOutResponse struct {
	ID       string           `json:"id" example:"b51d4f0e-8a2c-4f6d-9e3b-0c7a1d92e845"`
	PunchOut time.Time        `json:"punchOut" example:"2024-01-15T10:02:03Z"`
	Metrics  timecalc.Metrics `json:"metrics"`
}

// CancelResponse acknowledges a voided punch
type CancelResponse struct {
	ID     string `json:"id" example:"b51d4f0e-8a2c-4f6d-9e3b-0c7a1d92e845"`
	Voided bool   `json:"voided" example:"true"`
}

// WeeklyResponse is one user's range report: totals plus per-day summaries
type WeeklyResponse struct {
	StartDate string       `json:"startDate" example:"2024-01-15"`
	EndDate   string       `json:"endDate" example:"2024-01-21"`
	Totals    TotalsDTO    `json:"totals"`
	Days      []SummaryDTO `json:"days"`
}
