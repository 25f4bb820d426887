// Package repo provides Postgres bindings for the attendance domain.Repo
package repo

import (
	"context"
	"time"

	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit/repokit"
	perr "timeclock/internal/platform/errors"
	"timeclock/internal/platform/store"
	"timeclock/internal/services/attendance/domain"
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

const recordCols = `id, uid, punch_in, punch_out, status, void_reason, voided_at, admin_edited,
work_date, regular_hours, overtime_hours, night_diff_hours, total_worked_hours,
late_minutes, undertime_minutes, created_at, updated_at`

func scanRecord(row repokit.Row) (domain.Record, error) {
	var (
		rec        domain.Record
		status     string
		voidReason *string
		voidedAt   *time.Time
		workDate   *time.Time
		regular    *float64
		overtime   *float64
		nightDiff  *float64
		total      *float64
		late       *int
		undertime  *int
	)
	if err := row.Scan(
		&rec.ID,
		&rec.UID,
		&rec.PunchIn,
		&rec.PunchOut,
		&status,
		&voidReason,
		&voidedAt,
		&rec.AdminEdited,
		&workDate,
		&regular,
		&overtime,
		&nightDiff,
		&total,
		&late,
		&undertime,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return domain.Record{}, err
	}
	rec.Status = domain.Status(status)
	if voidReason != nil {
		rec.VoidReason = *voidReason
	}
	if voidedAt != nil {
		rec.VoidedAt = *voidedAt
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

func (r *queries) Create(ctx context.Context, rec domain.Record) error {
	const sql = `
insert into attendance (id, uid, punch_in, status, admin_edited, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.q.Exec(ctx, sql,
		rec.ID, rec.UID, rec.PunchIn, string(rec.Status), rec.AdminEdited, rec.CreatedAt, rec.UpdatedAt)
	return perr.FromPostgresWithField(err, "insert punch record")
}

func (r *queries) Get(ctx context.Context, id string) (domain.Record, error) {
	return store.One(ctx, r.q, scanRecord,
		`select `+recordCols+` from attendance where id = $1`, id)
}

func (r *queries) OpenFor(ctx context.Context, uid string) (domain.Record, error) {
	return store.One(ctx, r.q, scanRecord,
		`select `+recordCols+` from attendance where uid = $1 and status = 'open'`, uid)
}

func (r *queries) Close(
	ctx context.Context, id string, punchOut time.Time, m timecalc.Metrics, at time.Time,
) (domain.Record, error) {
	const sql = `
update attendance set
  punch_out          = $2,
  status             = 'closed',
  work_date          = $3::date,
  regular_hours      = $4,
  overtime_hours     = $5,
  night_diff_hours   = $6,
  total_worked_hours = $7,
  late_minutes       = $8,
  undertime_minutes  = $9,
  updated_at         = $10
where id = $1
returning ` + recordCols
	return store.One(ctx, r.q, scanRecord, sql,
		id, punchOut, m.WorkDate,
		m.RegularHours, m.OvertimeHours, m.NightDiffHours, m.TotalWorkedHours,
		m.LateMinutes, m.UndertimeMinutes, at)
}

func (r *queries) Void(ctx context.Context, id, reason string, at time.Time) (domain.Record, error) {
	const sql = `
update attendance set
  status      = 'voided',
  void_reason = $2,
  voided_at   = $3,
  updated_at  = $3
where id = $1
returning ` + recordCols
	return store.One(ctx, r.q, scanRecord, sql, id, reason, at)
}

func (r *queries) Replace(
	ctx context.Context, id string, punchIn, punchOut time.Time, m timecalc.Metrics, at time.Time,
) (domain.Record, error) {
	const sql = `
update attendance set
  punch_in           = $2,
  punch_out          = $3,
  status             = 'closed',
  void_reason        = null,
  voided_at          = null,
  admin_edited       = true,
  work_date          = $4::date,
  regular_hours      = $5,
  overtime_hours     = $6,
  night_diff_hours   = $7,
  total_worked_hours = $8,
  late_minutes       = $9,
  undertime_minutes  = $10,
  updated_at         = $11
where id = $1
returning ` + recordCols
	return store.One(ctx, r.q, scanRecord, sql,
		id, punchIn, punchOut, m.WorkDate,
		m.RegularHours, m.OvertimeHours, m.NightDiffHours, m.TotalWorkedHours,
		m.LateMinutes, m.UndertimeMinutes, at)
}

func (r *queries) SetPunchIn(
	ctx context.Context, id string, punchIn time.Time, at time.Time,
) (domain.Record, error) {
	const sql = `
update attendance set punch_in = $2, admin_edited = true, updated_at = $3
where id = $1
returning ` + recordCols
	return store.One(ctx, r.q, scanRecord, sql, id, punchIn, at)
}

func (r *queries) Delete(ctx context.Context, id string) error {
	return store.ExecOne(ctx, r.q, `delete from attendance where id = $1`, id)
}

func (r *queries) ListRange(
	ctx context.Context, uid string, from, to time.Time,
) ([]domain.Record, error) {
	return store.Many(ctx, r.q, scanRecord,
		`select `+recordCols+` from attendance
where uid = $1 and punch_in between $2 and $3
order by punch_in desc`,
		uid, from, to)
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
