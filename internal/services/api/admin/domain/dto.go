// Package domain holds DTOs for the admin http surface
package domain

import (
	"time"

	"timeclock/internal/core/timecalc"
	attdto "timeclock/internal/services/api/attendance/domain"
	authdom "timeclock/internal/services/api/auth/domain"
	attdom "timeclock/internal/services/attendance/domain"
	rollupdom "timeclock/internal/services/rollup/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// PunchPatchInput rewrites one or both ends of a punch pair
// absent fields keep their stored values
type PunchPatchInput struct {
	PunchIn  *time.Time `json:"punchIn" example:"2024-01-15T01:00:00Z"`
	PunchOut *time.Time `json:"punchOut" example:"2024-01-15T10:00:00Z"`
}

// Patch maps the request onto the attendance patch
func (in PunchPatchInput) Patch() attdom.PunchPatch {
	return attdom.PunchPatch{PunchIn: in.PunchIn, PunchOut: in.PunchOut}
}

// ScheduleInput is a shift window in local clock-face time
type ScheduleInput struct {
	Start string `json:"start" validate:"required" example:"09:00"`
	End   string `json:"end"   validate:"required" example:"18:00"`
}

// SchedulePatchInput assigns a shift window and/or timezone
// at least one field must be present
type SchedulePatchInput struct {
	Schedule *ScheduleInput `json:"schedule"`
	Timezone *string        `json:"timezone" validate:"omitempty,min=1,max=64" example:"Asia/Manila"`
}

// Patch maps the request onto the roster patch
func (in SchedulePatchInput) Patch() rosterdom.SchedulePatch {
	out := rosterdom.SchedulePatch{Timezone: in.Timezone}
	if in.Schedule != nil {
		out.Schedule = &timecalc.Schedule{Start: in.Schedule.Start, End: in.Schedule.End}
	}
	return out
}

// DeleteResponse acknowledges a hard-deleted punch record
type DeleteResponse struct {
	ID      string `json:"id" example:"b51d4f0e-8a2c-4f6d-9e3b-0c7a1d92e845"`
	Deleted bool   `json:"deleted" example:"true"`
}

// EmployeeDayDTO is one employee's day rollup with display fields for reports
type EmployeeDayDTO struct {
	attdto.SummaryDTO
	FirstName  string `json:"firstName" example:"Jane"`
	LastName   string `json:"lastName" example:"Cruz"`
	Department string `json:"department,omitempty" example:"Engineering"`
	Position   string `json:"position,omitempty" example:"Backend Engineer"`
}

// EmployeeDayViews maps enriched day rollups, preserving order
func EmployeeDayViews(days []rollupdom.EmployeeDay) []EmployeeDayDTO {
	out := make([]EmployeeDayDTO, 0, len(days))
	for _, d := range days {
		out = append(out, EmployeeDayDTO{
			SummaryDTO: attdto.SummaryView(d.Summary),
			FirstName:  d.FirstName,
			LastName:   d.LastName,
			Department: d.Department,
			Position:   d.Position,
		})
	}
	return out
}

// EmployeeWeekDTO is one employee's slice of a range report
type EmployeeWeekDTO struct {
	UID        string              `json:"uid" example:"7f2c3a9e-1d44-4a6b-9c0f-5e8b2d711c3a"`
	FirstName  string              `json:"firstName" example:"Jane"`
	LastName   string              `json:"lastName" example:"Cruz"`
	Department string              `json:"department,omitempty" example:"Engineering"`
	Position   string              `json:"position,omitempty" example:"Backend Engineer"`
	Totals     attdto.TotalsDTO    `json:"totals"`
	Days       []attdto.SummaryDTO `json:"days"`
}

// EmployeeWeekViews maps grouped range reports, preserving order
func EmployeeWeekViews(weeks []rollupdom.EmployeeWeek) []EmployeeWeekDTO {
	out := make([]EmployeeWeekDTO, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, EmployeeWeekDTO{
			UID:        w.UID,
			FirstName:  w.FirstName,
			LastName:   w.LastName,
			Department: w.Department,
			Position:   w.Position,
			Totals:     attdto.TotalsView(w.Totals),
			Days:       attdto.SummaryViews(w.Days),
		})
	}
	return out
}

// DailyReportResponse is every employee's rollup for one date
type DailyReportResponse struct {
	Date  string           `json:"date" example:"2024-01-15"`
	Count int              `json:"count" example:"12"`
	Data  []EmployeeDayDTO `json:"data"`
}

// WeeklyReportResponse is every employee's totals over a date range
type WeeklyReportResponse struct {
	StartDate string            `json:"startDate" example:"2024-01-15"`
	EndDate   string            `json:"endDate" example:"2024-01-21"`
	Count     int               `json:"count" example:"12"`
	Data      []EmployeeWeekDTO `json:"data"`
}

// UserViews maps roster users onto the shared profile shape, preserving order
func UserViews(users []rosterdom.User) []authdom.UserDTO {
	out := make([]authdom.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, authdom.UserView(u))
	}
	return out
}
