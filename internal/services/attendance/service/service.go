// Package service implements punch workflows: clock in/out, cancellation,
// history, and the admin punch editor
package service

import (
	"context"

	"github.com/google/uuid"

	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit/repokit"
	"timeclock/internal/platform/clock"
	perr "timeclock/internal/platform/errors"
	"timeclock/internal/services/attendance/domain"
	rollupdom "timeclock/internal/services/rollup/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// voidReason marks records cancelled through the employee endpoint
const voidReason = "Cancelled by user"

// Service is the full punch surface
type Service interface {
	domain.PunchPort
	domain.AdminPort
}

// Svc implements Service
type Svc struct {
	repo    domain.Repo // bound to the root pool for reads
	db      repokit.TxRunner
	binder  repokit.Binder[domain.Repo]
	users   rosterdom.UsersPort
	rollup  rollupdom.AggregatorPort
	reports rollupdom.ReportsPort
	engine  *timecalc.Engine
	clk     clock.Clock
}

var _ Service = (*Svc)(nil)

// Options wires the collaborating services
type Options struct {
	// Users is required; punch-out and edits read schedules from it
	Users rosterdom.UsersPort

	// Rollup is required; closes fold into it, edits rebuild through it
	Rollup rollupdom.AggregatorPort

	// Reports is required; the status endpoint reads today's summary
	Reports rollupdom.ReportsPort

	// Engine is optional; defaults to the fixed office offset
	Engine *timecalc.Engine

	// Clock is optional; defaults to the system clock
	Clock clock.Clock
}

// New constructs the attendance service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], opt Options) *Svc {
	if db == nil {
		panic("attendance.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("attendance.Service requires a non-nil Repo binder")
	}
	if opt.Users == nil {
		panic("attendance.Service requires a non-nil roster UsersPort")
	}
	if opt.Rollup == nil {
		panic("attendance.Service requires a non-nil rollup AggregatorPort")
	}
	if opt.Reports == nil {
		panic("attendance.Service requires a non-nil rollup ReportsPort")
	}

	eng := opt.Engine
	if eng == nil {
		eng = timecalc.New()
	}
	clk := opt.Clock
	if clk == nil {
		clk = clock.System{}
	}

	return &Svc{
		repo:    binder.Bind(db),
		db:      db,
		binder:  binder,
		users:   opt.Users,
		rollup:  opt.Rollup,
		reports: opt.Reports,
		engine:  eng,
		clk:     clk,
	}
}

// Status reports whether the caller is punched in plus today's summary so
// far. "Today" is the UTC calendar date, not the office-local one
func (s *Svc) Status(ctx context.Context, uid string) (domain.StatusView, error) {
	var view domain.StatusView

	open, err := s.repo.OpenFor(ctx, uid)
	switch {
	case err == nil:
		view.PunchedIn = true
		view.OpenPunch = &open
	case perr.IsCode(err, perr.ErrorCodeNotFound):
	default:
		return domain.StatusView{}, err
	}

	sum, err := s.reports.Daily(ctx, uid, timecalc.TodayUTC(s.clk.Now()))
	switch {
	case err == nil:
		view.TodaySummary = &sum
	case perr.IsCode(err, perr.ErrorCodeNotFound):
	default:
		return domain.StatusView{}, err
	}
	return view, nil
}

// PunchIn opens a new punch record. A user holds at most one open record;
// the in-tx lookup and the partial unique index both enforce it
func (s *Svc) PunchIn(ctx context.Context, uid string) (domain.Record, error) {
	now := s.clk.Now().UTC()
	rec := domain.Record{
		ID:        uuid.NewString(),
		UID:       uid,
		PunchIn:   now,
		Status:    domain.StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		_, err := r.OpenFor(ctx, uid)
		switch {
		case err == nil:
			return perr.Conflictf("already have an open punch")
		case !perr.IsCode(err, perr.ErrorCodeNotFound):
			return err
		}
		return r.Create(ctx, rec)
	})
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			// lost the race to a concurrent punch-in; same answer as the lookup
			return domain.Record{}, perr.Conflictf("already have an open punch")
		}
		return domain.Record{}, err
	}
	return rec, nil
}

// PunchOut closes the caller's open punch, computes its metrics against the
// assigned schedule, and folds them into the day summary. The fold runs
// after the record commit; a fold failure surfaces as an error and the next
// rebuild of the day repairs the summary
func (s *Svc) PunchOut(ctx context.Context, uid string) (domain.Record, error) {
	now := s.clk.Now().UTC()

	var rec domain.Record
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		open, err := r.OpenFor(ctx, uid)
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.NotFoundf("no open punch")
			}
			return err
		}

		u, err := s.users.Get(ctx, uid)
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.NotFoundf("user profile not found")
			}
			return err
		}
		if !u.HasSchedule() {
			return perr.FailedPreconditionf("no schedule assigned")
		}

		m := s.engine.Compute(open.PunchIn, now, u.Schedule)
		rec, err = r.Close(ctx, open.ID, now, m, now)
		return err
	})
	if err != nil {
		return domain.Record{}, err
	}

	if err := s.rollup.Upsert(ctx, uid, rec.Metrics.WorkDate, *rec.Metrics, punchRef(rec)); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// Cancel voids the caller's open punch. Voided records stay in history but
// never satisfy open-punch lookups or aggregation
func (s *Svc) Cancel(ctx context.Context, uid, attendanceID string) (domain.Record, error) {
	now := s.clk.Now().UTC()

	var rec domain.Record
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.Get(ctx, attendanceID)
		if err != nil {
			return recordErr(err)
		}
		if cur.UID != uid {
			return perr.Forbiddenf("does not belong to you")
		}
		if cur.Status != domain.StatusOpen {
			return perr.Conflictf("already completed")
		}
		rec, err = r.Void(ctx, attendanceID, voidReason, now)
		return err
	})
	if err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// History lists the caller's punch records in a date range, newest first
func (s *Svc) History(ctx context.Context, uid, startDate, endDate string) ([]domain.Record, error) {
	return s.listRange(ctx, uid, startDate, endDate)
}

// ListFor lists any user's punch records in a date range, newest first
func (s *Svc) ListFor(ctx context.Context, uid, startDate, endDate string) ([]domain.Record, error) {
	return s.listRange(ctx, uid, startDate, endDate)
}

func (s *Svc) listRange(ctx context.Context, uid, startDate, endDate string) ([]domain.Record, error) {
	if startDate == "" || endDate == "" {
		return nil, perr.Validationf("startDate and endDate are required")
	}
	from, to, err := timecalc.RangeUTC(startDate, endDate)
	if err != nil {
		return nil, perr.Validationf("dates must be YYYY-MM-DD")
	}
	return s.repo.ListRange(ctx, uid, from, to)
}

// EditPunch rewrites one or both punch instants on a record. A complete
// pair is recomputed against the user's current schedule, closed, and its
// day summary rebuilt; an incomplete pair only moves the punch-in and
// leaves status and metrics untouched
func (s *Svc) EditPunch(ctx context.Context, punchID string, patch domain.PunchPatch) (domain.Record, error) {
	if patch.Empty() {
		return domain.Record{}, perr.Validationf("punchIn or punchOut is required")
	}
	now := s.clk.Now().UTC()

	cur, err := s.repo.Get(ctx, punchID)
	if err != nil {
		return domain.Record{}, recordErr(err)
	}

	punchIn := cur.PunchIn
	if patch.PunchIn != nil {
		punchIn = patch.PunchIn.UTC()
	}
	punchOut := cur.PunchOut
	if patch.PunchOut != nil {
		t := patch.PunchOut.UTC()
		punchOut = &t
	}

	if punchOut == nil {
		var rec domain.Record
		err := s.db.Tx(ctx, func(q repokit.Queryer) error {
			var err error
			rec, err = s.binder.Bind(q).SetPunchIn(ctx, punchID, punchIn, now)
			return err
		})
		if err != nil {
			return domain.Record{}, recordErr(err)
		}
		return rec, nil
	}

	u, err := s.users.Get(ctx, cur.UID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Record{}, perr.NotFoundf("user profile not found")
		}
		return domain.Record{}, err
	}
	if !u.HasSchedule() {
		return domain.Record{}, perr.FailedPreconditionf("no schedule assigned")
	}

	m := s.engine.Compute(punchIn, *punchOut, u.Schedule)

	var rec domain.Record
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		rec, err = s.binder.Bind(q).Replace(ctx, punchID, punchIn, *punchOut, m, now)
		return err
	})
	if err != nil {
		return domain.Record{}, recordErr(err)
	}

	if err := s.rollup.Rebuild(ctx, cur.UID, m.WorkDate); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

// DeletePunch hard-deletes a record and rebuilds the day it belonged to.
// The day falls back to the punch-in's office-local date when the record
// never closed
func (s *Svc) DeletePunch(ctx context.Context, punchID string) error {
	cur, err := s.repo.Get(ctx, punchID)
	if err != nil {
		return recordErr(err)
	}

	workDate := s.engine.WorkDateOf(cur.PunchIn)
	if cur.Metrics != nil {
		workDate = cur.Metrics.WorkDate
	}

	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Delete(ctx, punchID)
	})
	if err != nil {
		return err
	}
	return s.rollup.Rebuild(ctx, cur.UID, workDate)
}

// recordErr rebrands storage not-found into the punch wording
func recordErr(err error) error {
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.NotFoundf("punch record not found")
	}
	return err
}

func punchRef(rec domain.Record) rollupdom.PunchRef {
	return rollupdom.PunchRef{
		AttendanceID: rec.ID,
		PunchIn:      rec.PunchIn,
		PunchOut:     *rec.PunchOut,
	}
}
