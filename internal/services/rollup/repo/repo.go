// Package repo provides Postgres bindings for the rollup domain.Repo
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit/repokit"
	perr "timeclock/internal/platform/errors"
	"timeclock/internal/platform/store"
	"timeclock/internal/services/rollup/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

const summaryCols = `id, uid, work_date,
regular_hours, overtime_hours, night_diff_hours, total_worked_hours,
late_minutes, undertime_minutes, punches, updated_at`

func scanSummary(row repokit.Row) (domain.Summary, error) {
	var (
		s        domain.Summary
		workDate time.Time
		punches  []byte
	)
	if err := row.Scan(
		&s.ID,
		&s.UID,
		&workDate,
		&s.RegularHours,
		&s.OvertimeHours,
		&s.NightDiffHours,
		&s.TotalWorkedHours,
		&s.LateMinutes,
		&s.UndertimeMinutes,
		&punches,
		&s.UpdatedAt,
	); err != nil {
		return domain.Summary{}, err
	}
	s.WorkDate = workDate.Format(timecalc.DateLayout)
	if len(punches) > 0 {
		if err := json.Unmarshal(punches, &s.Punches); err != nil {
			return domain.Summary{}, fmt.Errorf("decode punches for %s: %w", s.ID, err)
		}
	}
	return s, nil
}

func (r *queries) Get(ctx context.Context, id string) (domain.Summary, error) {
	return store.One(ctx, r.q, scanSummary,
		`select `+summaryCols+` from daily_summaries where id = $1`, id)
}

func (r *queries) Put(ctx context.Context, s domain.Summary) error {
	punches, err := json.Marshal(s.Punches)
	if err != nil {
		return fmt.Errorf("encode punches for %s: %w", s.ID, err)
	}
	const sql = `
insert into daily_summaries (
  id, uid, work_date,
  regular_hours, overtime_hours, night_diff_hours, total_worked_hours,
  late_minutes, undertime_minutes, punches, updated_at
) values ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11)
on conflict (id) do update set
  regular_hours      = excluded.regular_hours,
  overtime_hours     = excluded.overtime_hours,
  night_diff_hours   = excluded.night_diff_hours,
  total_worked_hours = excluded.total_worked_hours,
  late_minutes       = excluded.late_minutes,
  undertime_minutes  = excluded.undertime_minutes,
  punches            = excluded.punches,
  updated_at         = excluded.updated_at
`
	_, err = r.q.Exec(ctx, sql,
		s.ID, s.UID, s.WorkDate,
		s.RegularHours, s.OvertimeHours, s.NightDiffHours, s.TotalWorkedHours,
		s.LateMinutes, s.UndertimeMinutes, punches, s.UpdatedAt,
	)
	return perr.FromPostgresWithField(err, "put daily summary")
}

func (r *queries) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `delete from daily_summaries where id = $1`, id)
	return perr.FromPostgresWithField(err, "delete daily summary")
}

func (r *queries) ByWorkDate(ctx context.Context, workDate string) ([]domain.Summary, error) {
	return store.Many(ctx, r.q, scanSummary,
		`select `+summaryCols+` from daily_summaries where work_date = $1::date order by uid asc`,
		workDate)
}

func (r *queries) ByUserRange(ctx context.Context, uid, startDate, endDate string) ([]domain.Summary, error) {
	return store.Many(ctx, r.q, scanSummary,
		`select `+summaryCols+` from daily_summaries
where uid = $1 and work_date between $2::date and $3::date
order by work_date asc`,
		uid, startDate, endDate)
}

func (r *queries) ByRange(ctx context.Context, startDate, endDate string) ([]domain.Summary, error) {
	return store.Many(ctx, r.q, scanSummary,
		`select `+summaryCols+` from daily_summaries
where work_date between $1::date and $2::date
order by uid asc, work_date asc`,
		startDate, endDate)
}

func (r *queries) RecordsForUser(ctx context.Context, uid string) ([]domain.PunchRecord, error) {
	const sql = `
select id, punch_in, punch_out, status,
work_date, regular_hours, overtime_hours, night_diff_hours, total_worked_hours,
late_minutes, undertime_minutes
from attendance where uid = $1`
	return store.Many(ctx, r.q, scanPunchRecord, sql, uid)
}

func scanPunchRecord(row repokit.Row) (domain.PunchRecord, error) {
	var (
		rec       domain.PunchRecord
		workDate  *time.Time
		regular   *float64
		overtime  *float64
		nightDiff *float64
		total     *float64
		late      *int
		undertime *int
	)
	if err := row.Scan(
		&rec.AttendanceID,
		&rec.PunchIn,
		&rec.PunchOut,
		&rec.Status,
		&workDate,
		&regular,
		&overtime,
		&nightDiff,
		&total,
		&late,
		&undertime,
	); err != nil {
		return domain.PunchRecord{}, err
	}
	// work_date is only set once metrics exist; use it as the presence gate
	if workDate != nil {
		rec.Metrics = &timecalc.Metrics{
			WorkDate:         workDate.Format(timecalc.DateLayout),
			RegularHours:     fval(regular),
			OvertimeHours:    fval(overtime),
			NightDiffHours:   fval(nightDiff),
			TotalWorkedHours: fval(total),
			LateMinutes:      ival(late),
			UndertimeMinutes: ival(undertime),
		}
	}
	return rec, nil
}

func fval(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func ival(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
