// Package service implements the rollup workflows: folding closed punches
// into day summaries, rebuilding days from scratch, and range reports
package service

import (
	"context"
	"sort"

	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit/repokit"
	"timeclock/internal/platform/clock"
	perr "timeclock/internal/platform/errors"
	"timeclock/internal/services/rollup/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Aggregation only ever counts completed punches
const statusClosed = "closed"

// Service is the full rollup surface
type Service interface {
	domain.AggregatorPort
	domain.ReportsPort
}

// Svc implements Service
type Svc struct {
	repo   domain.Repo // bound to the root pool for reads
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	users  rosterdom.UsersPort
	clk    clock.Clock
}

var _ Service = (*Svc)(nil)

// New constructs the rollup service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[domain.Repo],
	users rosterdom.UsersPort,
	clk clock.Clock,
) *Svc {
	if db == nil {
		panic("rollup.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("rollup.Service requires a non-nil Repo binder")
	}
	if users == nil {
		panic("rollup.Service requires the roster Users port")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Svc{repo: binder.Bind(db), db: db, binder: binder, users: users, clk: clk}
}

// Upsert folds one closed punch into its day summary.
// The day's first close owns lateMinutes; the newest close owns undertimeMinutes
func (s *Svc) Upsert(
	ctx context.Context, uid, workDate string, m timecalc.Metrics, ref domain.PunchRef,
) error {
	id := domain.SummaryID(uid, workDate)
	now := s.clk.Now().UTC()
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.Get(ctx, id)
		switch {
		case perr.IsCode(err, perr.ErrorCodeNotFound):
			cur = domain.Summary{
				ID:               id,
				UID:              uid,
				WorkDate:         workDate,
				RegularHours:     m.RegularHours,
				OvertimeHours:    m.OvertimeHours,
				NightDiffHours:   m.NightDiffHours,
				TotalWorkedHours: m.TotalWorkedHours,
				LateMinutes:      m.LateMinutes,
				UndertimeMinutes: m.UndertimeMinutes,
			}
		case err != nil:
			return err
		default:
			cur.RegularHours = timecalc.AddHours(cur.RegularHours, m.RegularHours)
			cur.OvertimeHours = timecalc.AddHours(cur.OvertimeHours, m.OvertimeHours)
			cur.NightDiffHours = timecalc.AddHours(cur.NightDiffHours, m.NightDiffHours)
			cur.TotalWorkedHours = timecalc.AddHours(cur.TotalWorkedHours, m.TotalWorkedHours)
			cur.UndertimeMinutes = m.UndertimeMinutes
		}
		cur.Punches = append(cur.Punches, ref)
		cur.UpdatedAt = now
		return r.Put(ctx, cur)
	})
}

// Rebuild recomputes one day summary from the attendance rows. The row set
// is fetched whole and filtered here; open and voided punches never count
func (s *Svc) Rebuild(ctx context.Context, uid, workDate string) error {
	id := domain.SummaryID(uid, workDate)
	now := s.clk.Now().UTC()
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		all, err := r.RecordsForUser(ctx, uid)
		if err != nil {
			return err
		}

		day := make([]domain.PunchRecord, 0, len(all))
		for _, rec := range all {
			if rec.Status == statusClosed && rec.Metrics != nil && rec.PunchOut != nil &&
				rec.Metrics.WorkDate == workDate {
				day = append(day, rec)
			}
		}
		if len(day) == 0 {
			return r.Delete(ctx, id)
		}
		sort.Slice(day, func(i, j int) bool { return day[i].PunchIn.Before(day[j].PunchIn) })

		sum := domain.Summary{ID: id, UID: uid, WorkDate: workDate, UpdatedAt: now}
		for _, rec := range day {
			sum.RegularHours = timecalc.AddHours(sum.RegularHours, rec.Metrics.RegularHours)
			sum.OvertimeHours = timecalc.AddHours(sum.OvertimeHours, rec.Metrics.OvertimeHours)
			sum.NightDiffHours = timecalc.AddHours(sum.NightDiffHours, rec.Metrics.NightDiffHours)
			sum.TotalWorkedHours = timecalc.AddHours(sum.TotalWorkedHours, rec.Metrics.TotalWorkedHours)
			sum.Punches = append(sum.Punches, domain.PunchRef{
				AttendanceID: rec.AttendanceID,
				PunchIn:      rec.PunchIn,
				PunchOut:     *rec.PunchOut,
			})
		}
		sum.LateMinutes = day[0].Metrics.LateMinutes
		sum.UndertimeMinutes = day[len(day)-1].Metrics.UndertimeMinutes
		return r.Put(ctx, sum)
	})
}

// Daily returns one user-day summary
func (s *Svc) Daily(ctx context.Context, uid, date string) (domain.Summary, error) {
	sum, err := s.repo.Get(ctx, domain.SummaryID(uid, date))
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Summary{}, perr.NotFoundf("no summary for %s", date)
		}
		return domain.Summary{}, err
	}
	return sum, nil
}

// Weekly returns one user's summaries over a date range with range totals.
// An empty range reports zero totals, never a not-found
func (s *Svc) Weekly(ctx context.Context, uid, startDate, endDate string) (domain.WeekReport, error) {
	days, err := s.repo.ByUserRange(ctx, uid, startDate, endDate)
	if err != nil {
		return domain.WeekReport{}, err
	}
	rep := domain.WeekReport{StartDate: startDate, EndDate: endDate, Days: days}
	for _, d := range days {
		rep.Totals = addTotals(rep.Totals, d)
	}
	return rep, nil
}

// AllDaily returns every employee's summary for one date, enriched with
// display fields for the admin report
func (s *Svc) AllDaily(ctx context.Context, date string) ([]domain.EmployeeDay, error) {
	sums, err := s.repo.ByWorkDate(ctx, date)
	if err != nil {
		return nil, err
	}
	cache := map[string]display{}
	out := make([]domain.EmployeeDay, 0, len(sums))
	for _, sum := range sums {
		d, err := s.displayFor(ctx, cache, sum.UID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.EmployeeDay{
			Summary:    sum,
			FirstName:  d.first,
			LastName:   d.last,
			Department: d.dept,
			Position:   d.pos,
		})
	}
	return out, nil
}

// AllWeekly returns per-employee range totals with day breakdowns,
// employees ordered by name
func (s *Svc) AllWeekly(ctx context.Context, startDate, endDate string) ([]domain.EmployeeWeek, error) {
	sums, err := s.repo.ByRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	// rows arrive grouped by uid, days ascending
	var out []domain.EmployeeWeek
	var cur *domain.EmployeeWeek
	for _, sum := range sums {
		if cur == nil || cur.UID != sum.UID {
			out = append(out, domain.EmployeeWeek{UID: sum.UID})
			cur = &out[len(out)-1]
		}
		cur.Days = append(cur.Days, sum)
		cur.Totals = addTotals(cur.Totals, sum)
	}

	cache := map[string]display{}
	for i := range out {
		d, err := s.displayFor(ctx, cache, out[i].UID)
		if err != nil {
			return nil, err
		}
		out[i].FirstName = d.first
		out[i].LastName = d.last
		out[i].Department = d.dept
		out[i].Position = d.pos
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		if out[i].FirstName != out[j].FirstName {
			return out[i].FirstName < out[j].FirstName
		}
		return out[i].UID < out[j].UID
	})
	return out, nil
}

type display struct {
	first, last, dept, pos string
}

// displayFor resolves display fields once per uid. A summary can outlive
// its account; those rows report blank names rather than failing the report
func (s *Svc) displayFor(ctx context.Context, cache map[string]display, uid string) (display, error) {
	if d, ok := cache[uid]; ok {
		return d, nil
	}
	u, err := s.users.Get(ctx, uid)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			cache[uid] = display{}
			return display{}, nil
		}
		return display{}, err
	}
	d := display{first: u.FirstName, last: u.LastName, dept: u.Department, pos: u.Position}
	cache[uid] = d
	return d, nil
}

func addTotals(t domain.Totals, d domain.Summary) domain.Totals {
	t.RegularHours = timecalc.AddHours(t.RegularHours, d.RegularHours)
	t.OvertimeHours = timecalc.AddHours(t.OvertimeHours, d.OvertimeHours)
	t.NightDiffHours = timecalc.AddHours(t.NightDiffHours, d.NightDiffHours)
	t.TotalWorkedHours = timecalc.AddHours(t.TotalWorkedHours, d.TotalWorkedHours)
	t.LateMinutes += d.LateMinutes
	t.UndertimeMinutes += d.UndertimeMinutes
	return t
}
