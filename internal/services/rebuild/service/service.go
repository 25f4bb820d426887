// Package service implements the summary reconciliation worker. Upsert folds
// drift after admin edits, crashes between record commit and summary fold, or
// interleaved same-day closes; rebuilding every (user, day) in a range
// restores the summaries to what the attendance rows say
package service

import (
	"context"
	"time"

	"timeclock/internal/core/timecalc"
	perr "timeclock/internal/platform/errors"
	"timeclock/internal/platform/logger"
	"timeclock/internal/services/rebuild/domain"
	rollupdom "timeclock/internal/services/rollup/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Config holds worker tuning
type Config struct {
	// MaxAttempts per (user, day) rebuild; <=0 -> 3
	MaxAttempts int

	// RetryBase is the backoff unit between attempts; <=0 -> 250ms
	RetryBase time.Duration
}

// Svc implements domain.RunnerPort
type Svc struct {
	users  rosterdom.UsersPort
	rollup rollupdom.AggregatorPort
	cfg    Config
}

var _ domain.RunnerPort = (*Svc)(nil)

// New constructs the rebuild worker service
func New(users rosterdom.UsersPort, rollup rollupdom.AggregatorPort, cfg Config) *Svc {
	if users == nil {
		panic("rebuild.Service requires a non-nil roster UsersPort")
	}
	if rollup == nil {
		panic("rebuild.Service requires a non-nil rollup AggregatorPort")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 250 * time.Millisecond
	}
	return &Svc{users: users, rollup: rollup, cfg: cfg}
}

// RunRange rebuilds every (user, workDate) summary in the inclusive date
// range, one day at a time. Safe against live traffic: rebuild reads the
// attendance rows fresh. The run stops at the first rebuild that stays
// failed through its retries
func (s *Svc) RunRange(ctx context.Context, startDate, endDate, uid string) (domain.Report, error) {
	start, err := timecalc.ParseDate(startDate)
	if err != nil {
		return domain.Report{}, perr.Validationf("start date must be YYYY-MM-DD")
	}
	end, err := timecalc.ParseDate(endDate)
	if err != nil {
		return domain.Report{}, perr.Validationf("end date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return domain.Report{}, perr.Validationf("end date before start date")
	}

	uids, err := s.targets(ctx, uid)
	if err != nil {
		return domain.Report{}, err
	}

	rep := domain.Report{Users: len(uids)}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		workDate := day.Format(timecalc.DateLayout)
		for _, id := range uids {
			if err := s.rebuildOne(ctx, id, workDate); err != nil {
				return rep, err
			}
			rep.Rebuilt++
		}
		rep.Days++
		logger.C(ctx).Info().
			Str("work_date", workDate).
			Int("users", len(uids)).
			Msg("rebuild: day reconciled")
	}
	return rep, nil
}

func (s *Svc) targets(ctx context.Context, uid string) ([]string, error) {
	if uid != "" {
		u, err := s.users.Get(ctx, uid)
		if err != nil {
			return nil, err
		}
		return []string{u.UID}, nil
	}
	all, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	uids := make([]string, 0, len(all))
	for _, u := range all {
		uids = append(uids, u.UID)
	}
	return uids, nil
}

// rebuildOne retries with linear backoff; the last error wins
func (s *Svc) rebuildOne(ctx context.Context, uid, workDate string) error {
	var err error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		if err = s.rollup.Rebuild(ctx, uid, workDate); err == nil {
			return nil
		}
		logger.C(ctx).Warn().
			Str("uid", uid).
			Str("work_date", workDate).
			Int("attempt", attempt).
			Err(err).
			Msg("rebuild: attempt failed")
		if attempt < s.cfg.MaxAttempts {
			if serr := sleepCtx(ctx, time.Duration(attempt)*s.cfg.RetryBase); serr != nil {
				return serr
			}
		}
	}
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
