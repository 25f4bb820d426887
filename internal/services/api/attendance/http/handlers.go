// Package http provides HTTP transport for the attendance surface
package http

import (
	stdhttp "net/http"

	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/platform/clock"
	"timeclock/internal/platform/net/middleware"
	"timeclock/internal/services/api/attendance/domain"
	attdom "timeclock/internal/services/attendance/domain"
	rollupdom "timeclock/internal/services/rollup/domain"
)

// Deps carries the collaborators the handlers need
type Deps struct {
	Punches attdom.PunchPort
	Reports rollupdom.ReportsPort
	Auth    middleware.AuthPort
	Clock   clock.Clock // optional; defaults to the system clock
}

// Register mounts the punch endpoints; every route requires a bearer token
func Register(r httpkit.Router, d Deps) {
	clk := d.Clock
	if clk == nil {
		clk = clock.System{}
	}
	h := &handlers{punches: d.Punches, reports: d.Reports, clk: clk}

	httpkit.Protected(r, d.Auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/status", h.status)
		httpkit.Post(pr, "/punch-in", h.punchIn)
		httpkit.Post(pr, "/punch-out", h.punchOut)
		httpkit.Delete(pr, "/cancel-punch/{attendanceId}", h.cancel)
		httpkit.Get(pr, "/history", h.history)
		httpkit.Get(pr, "/summary/daily", h.dailySummary)
		httpkit.Get(pr, "/summary/weekly", h.weeklySummary)
	})
}

type handlers struct {
	punches attdom.PunchPort
	reports rollupdom.ReportsPort
	clk     clock.Clock
}

// swagger:route GET /attendance/status Attendance attendanceStatus
// @Summary Current punch state plus today's rollup
// @Tags Attendance
// @Produce json
// @Success 200 {object} domain.StatusResponse "ok"
// @Security BearerAuth
// @Router /attendance/status [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	view, err := h.punches.Status(r.Context(), httpkit.MustUser(r))
	if err != nil {
		return nil, err
	}
	out := domain.StatusResponse{PunchedIn: view.PunchedIn}
	if view.OpenPunch != nil {
		rec := domain.RecordView(*view.OpenPunch)
		out.OpenPunch = &rec
	}
	if view.TodaySummary != nil {
		sum := domain.SummaryView(*view.TodaySummary)
		out.TodaySummary = &sum
	}
	return out, nil
}

// swagger:route POST /attendance/punch-in Attendance attendancePunchIn
// @Summary Open a punch for the caller
// @Tags Attendance
// @Produce json
// @Success 201 {object} domain.PunchInResponse "created"
// @Failure 409 {object} httpkit.Envelope "already punched in"
// @Security BearerAuth
// @Router /attendance/punch-in [post]
func (h *handlers) punchIn(r *stdhttp.Request) (any, error) {
	rec, err := h.punches.PunchIn(r.Context(), httpkit.MustUser(r))
	if err != nil {
		return nil, err
	}
	return httpkit.Created(domain.PunchInResponse{ID: rec.ID, PunchIn: rec.PunchIn.UTC()}), nil
}

// swagger:route POST /attendance/punch-out Attendance attendancePunchOut
// @Summary Close the caller's open punch and compute metrics
// @Tags Attendance
// @Produce json
// @Success 200 {object} domain.PunchOutResponse "ok"
// @Failure 404 {object} httpkit.Envelope "no open punch"
// @Security BearerAuth
// @Router /attendance/punch-out [post]
func (h *handlers) punchOut(r *stdhttp.Request) (any, error) {
	rec, err := h.punches.PunchOut(r.Context(), httpkit.MustUser(r))
	if err != nil {
		return nil, err
	}
	out := domain.PunchOutResponse{ID: rec.ID}
	if rec.PunchOut != nil {
		out.PunchOut = rec.PunchOut.UTC()
	}
	if rec.Metrics != nil {
		out.Metrics = *rec.Metrics
	}
	return out, nil
}

// swagger:route DELETE /attendance/cancel-punch/{attendanceId} Attendance attendanceCancel
// @Summary Void the caller's open punch
// @Tags Attendance
// @Produce json
// @Param attendanceId path string true "Punch record id"
// @Success 200 {object} domain.CancelResponse "ok"
// @Failure 403 {object} httpkit.Envelope "not the caller's punch"
// @Failure 409 {object} httpkit.Envelope "already completed"
// @Security BearerAuth
// @Router /attendance/cancel-punch/{attendanceId} [delete]
func (h *handlers) cancel(r *stdhttp.Request) (any, error) {
	id, err := httpkit.MustParam(r, "attendanceId")
	if err != nil {
		return nil, err
	}
	rec, err := h.punches.Cancel(r.Context(), httpkit.MustUser(r), id)
	if err != nil {
		return nil, err
	}
	return domain.CancelResponse{ID: rec.ID, Voided: true}, nil
}

// swagger:route GET /attendance/history Attendance attendanceHistory
// @Summary Caller's punch records in a date range, newest first
// @Tags Attendance
// @Produce json
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {array} domain.RecordDTO "ok"
// @Security BearerAuth
// @Router /attendance/history [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	recs, err := h.punches.History(r.Context(), httpkit.MustUser(r),
		httpkit.Query(r, "startDate"), httpkit.Query(r, "endDate"))
	if err != nil {
		return nil, err
	}
	return domain.RecordViews(recs), nil
}

// swagger:route GET /attendance/summary/daily Attendance attendanceDailySummary
// @Summary Caller's rollup for one date
// @Tags Attendance
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today (UTC)"
// @Success 200 {object} domain.SummaryDTO "ok"
// @Failure 404 {object} httpkit.Envelope "no summary"
// @Security BearerAuth
// @Router /attendance/summary/daily [get]
func (h *handlers) dailySummary(r *stdhttp.Request) (any, error) {
	date := httpkit.QueryDefault(r, "date", timecalc.TodayUTC(h.clk.Now()))
	sum, err := h.reports.Daily(r.Context(), httpkit.MustUser(r), date)
	if err != nil {
		return nil, err
	}
	return domain.SummaryView(sum), nil
}

// swagger:route GET /attendance/summary/weekly Attendance attendanceWeeklySummary
// @Summary Caller's rollups and totals over a date range
// @Tags Attendance
// @Produce json
// @Param startDate query string false "YYYY-MM-DD, defaults to the current week's Monday (UTC)"
// @Param endDate query string false "YYYY-MM-DD, defaults to the current week's Sunday (UTC)"
// @Success 200 {object} domain.WeeklyResponse "ok"
// @Security BearerAuth
// @Router /attendance/summary/weekly [get]
func (h *handlers) weeklySummary(r *stdhttp.Request) (any, error) {
	start := httpkit.Query(r, "startDate")
	end := httpkit.Query(r, "endDate")
	if start == "" || end == "" {
		start, end = timecalc.DefaultWeekUTC(h.clk.Now())
	}
	rep, err := h.reports.Weekly(r.Context(), httpkit.MustUser(r), start, end)
	if err != nil {
		return nil, err
	}
	return domain.WeeklyResponse{
		StartDate: rep.StartDate,
		EndDate:   rep.EndDate,
		Totals:    domain.TotalsView(rep.Totals),
		Days:      domain.SummaryViews(rep.Days),
	}, nil
}
