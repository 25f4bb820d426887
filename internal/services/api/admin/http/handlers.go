// Package http provides HTTP transport for the admin surface
package http

import (
	stdhttp "net/http"

	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/platform/clock"
	"timeclock/internal/platform/net/middleware"
	"timeclock/internal/services/api/admin/domain"
	attdto "timeclock/internal/services/api/attendance/domain"
	authdom "timeclock/internal/services/api/auth/domain"
	attdom "timeclock/internal/services/attendance/domain"
	rollupdom "timeclock/internal/services/rollup/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Deps carries the collaborators the handlers need
type Deps struct {
	Editor  attdom.AdminPort
	Roster  rosterdom.AdminPort
	Reports rollupdom.ReportsPort
	Auth    middleware.AuthPort
	Clock   clock.Clock // optional; defaults to the system clock
}

// Register mounts the admin endpoints
// every route requires a bearer token carrying the admin role
func Register(r httpkit.Router, d Deps) {
	clk := d.Clock
	if clk == nil {
		clk = clock.System{}
	}
	h := &handlers{editor: d.Editor, roster: d.Roster, reports: d.Reports, clk: clk}

	httpkit.Protected(r, d.Auth, func(pr httpkit.Router) {
		pr.Use(httpkit.RequireRole("admin"))

		httpkit.Get(pr, "/punches/{uid}", h.punches)
		httpkit.PutJSON[domain.PunchPatchInput](pr, "/punches/{punchId}", h.editPunch)
		httpkit.Delete(pr, "/punches/{punchId}", h.deletePunch)
		httpkit.PutJSON[domain.SchedulePatchInput](pr, "/schedule/{uid}", h.assignSchedule)
		httpkit.Get(pr, "/employees", h.employees)
		httpkit.Get(pr, "/reports/daily", h.dailyReport)
		httpkit.Get(pr, "/reports/weekly", h.weeklyReport)
	})
}

type handlers struct {
	editor  attdom.AdminPort
	roster  rosterdom.AdminPort
	reports rollupdom.ReportsPort
	clk     clock.Clock
}

// swagger:route GET /admin/punches/{uid} Admin adminPunches
// @Summary One employee's punch records in a date range, newest first
// @Tags Admin
// @Produce json
// @Param uid path string true "Employee id"
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {array} attdto.RecordDTO "ok"
// @Security BearerAuth
// @Router /admin/punches/{uid} [get]
func (h *handlers) punches(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.MustParam(r, "uid")
	if err != nil {
		return nil, err
	}
	recs, err := h.editor.ListFor(r.Context(), uid,
		httpkit.Query(r, "startDate"), httpkit.Query(r, "endDate"))
	if err != nil {
		return nil, err
	}
	return attdto.RecordViews(recs), nil
}

// swagger:route PUT /admin/punches/{punchId} Admin adminEditPunch
// @Summary Rewrite a punch pair and recompute its metrics
// @Tags Admin
// @Accept json
// @Produce json
// @Param punchId path string true "Punch record id"
// @Param payload body domain.PunchPatchInput true "Patch"
// @Success 200 {object} attdto.RecordDTO "ok"
// @Failure 400 {object} httpkit.Envelope "both fields omitted"
// @Failure 404 {object} httpkit.Envelope "record not found"
// @Security BearerAuth
// @Router /admin/punches/{punchId} [put]
func (h *handlers) editPunch(r *stdhttp.Request, in domain.PunchPatchInput) (any, error) {
	id, err := httpkit.MustParam(r, "punchId")
	if err != nil {
		return nil, err
	}
	rec, err := h.editor.EditPunch(r.Context(), id, in.Patch())
	if err != nil {
		return nil, err
	}
	return attdto.RecordView(rec), nil
}

// swagger:route DELETE /admin/punches/{punchId} Admin adminDeletePunch
// @Summary Hard-delete a punch record and rebuild its day
// @Tags Admin
// @Produce json
// @Param punchId path string true "Punch record id"
// @Success 200 {object} domain.DeleteResponse "ok"
// @Failure 404 {object} httpkit.Envelope "record not found"
// @Security BearerAuth
// @Router /admin/punches/{punchId} [delete]
func (h *handlers) deletePunch(r *stdhttp.Request) (any, error) {
	id, err := httpkit.MustParam(r, "punchId")
	if err != nil {
		return nil, err
	}
	if err := h.editor.DeletePunch(r.Context(), id); err != nil {
		return nil, err
	}
	return domain.DeleteResponse{ID: id, Deleted: true}, nil
}

// swagger:route PUT /admin/schedule/{uid} Admin adminAssignSchedule
// @Summary Assign an employee's shift window and/or timezone
// @Tags Admin
// @Accept json
// @Produce json
// @Param uid path string true "Employee id"
// @Param payload body domain.SchedulePatchInput true "Patch"
// @Success 200 {object} authdom.UserDTO "ok"
// @Failure 400 {object} httpkit.Envelope "empty patch or bad HH:MM"
// @Failure 404 {object} httpkit.Envelope "user not found"
// @Security BearerAuth
// @Router /admin/schedule/{uid} [put]
func (h *handlers) assignSchedule(r *stdhttp.Request, in domain.SchedulePatchInput) (any, error) {
	uid, err := httpkit.MustParam(r, "uid")
	if err != nil {
		return nil, err
	}
	u, err := h.roster.AssignSchedule(r.Context(), uid, in.Patch())
	if err != nil {
		return nil, err
	}
	return authdom.UserView(u), nil
}

// swagger:route GET /admin/employees Admin adminEmployees
// @Summary Every registered employee, oldest account first
// @Tags Admin
// @Produce json
// @Success 200 {array} authdom.UserDTO "ok"
// @Security BearerAuth
// @Router /admin/employees [get]
func (h *handlers) employees(r *stdhttp.Request) (any, error) {
	users, err := h.roster.All(r.Context())
	if err != nil {
		return nil, err
	}
	return domain.UserViews(users), nil
}

// swagger:route GET /admin/reports/daily Admin adminDailyReport
// @Summary Every employee's rollup for one date
// @Tags Admin
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today (UTC)"
// @Success 200 {object} domain.DailyReportResponse "ok"
// @Security BearerAuth
// @Router /admin/reports/daily [get]
func (h *handlers) dailyReport(r *stdhttp.Request) (any, error) {
	date := httpkit.QueryDefault(r, "date", timecalc.TodayUTC(h.clk.Now()))
	days, err := h.reports.AllDaily(r.Context(), date)
	if err != nil {
		return nil, err
	}
	return domain.DailyReportResponse{
		Date:  date,
		Count: len(days),
		Data:  domain.EmployeeDayViews(days),
	}, nil
}

// swagger:route GET /admin/reports/weekly Admin adminWeeklyReport
// @Summary Every employee's totals over a date range
// @Tags Admin
// @Produce json
// @Param startDate query string false "YYYY-MM-DD, defaults to the current week's Monday (UTC)"
// @Param endDate query string false "YYYY-MM-DD, defaults to the current week's Sunday (UTC)"
// @Success 200 {object} domain.WeeklyReportResponse "ok"
// @Security BearerAuth
// @Router /admin/reports/weekly [get]
func (h *handlers) weeklyReport(r *stdhttp.Request) (any, error) {
	start := httpkit.Query(r, "startDate")
	end := httpkit.Query(r, "endDate")
	if start == "" || end == "" {
		start, end = timecalc.DefaultWeekUTC(h.clk.Now())
	}
	weeks, err := h.reports.AllWeekly(r.Context(), start, end)
	if err != nil {
		return nil, err
	}
	return domain.WeeklyReportResponse{
		StartDate: start,
		EndDate:   end,
		Count:     len(weeks),
		Data:      domain.EmployeeWeekViews(weeks),
	}, nil
}
