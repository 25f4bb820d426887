// Package service implements roster workflows: registration, credential
// checks, profile and schedule updates
package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit/repokit"
	"timeclock/internal/platform/clock"
	perr "timeclock/internal/platform/errors"
	"timeclock/internal/services/roster/domain"
)

// Accounts created without an explicit zone carry this marker; the
// metrics engine interprets every zone as the fixed office offset
const defaultTimezone = "Asia/Manila"

// Service is the full roster surface
type Service interface {
	domain.UsersPort
	domain.AccountsPort
	domain.AdminPort
}

// Svc implements Service
type Svc struct {
	repo   domain.Repo // bound to the root pool for reads
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	clk    clock.Clock
}

var _ Service = (*Svc)(nil)

// New constructs the roster service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], clk clock.Clock) *Svc {
	if db == nil {
		panic("roster.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("roster.Service requires a non-nil Repo binder")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Svc{repo: binder.Bind(db), db: db, binder: binder, clk: clk}
}

// Register creates an employee account with a bcrypt-hashed password
func (s *Svc) Register(ctx context.Context, in domain.NewUser) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return domain.User{}, perr.Validationf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, perr.Internalf("hash password: %v", err)
	}

	now := s.clk.Now().UTC()
	u := domain.User{
		UID:        uuid.NewString(),
		Email:      email,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Department: strings.TrimSpace(in.Department),
		Position:   strings.TrimSpace(in.Position),
		Role:       domain.RoleEmployee,
		Timezone:   defaultTimezone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Create(ctx, u, string(hash))
	})
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			return domain.User{}, perr.Conflictf("email already registered")
		}
		return domain.User{}, err
	}
	return u, nil
}

// Authenticate verifies email/password credentials.
// Unknown emails and wrong passwords are indistinguishable to the caller
func (s *Svc) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, hash, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.User{}, perr.Unauthorizedf("invalid credentials")
		}
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return domain.User{}, perr.Unauthorizedf("invalid credentials")
	}
	return u, nil
}

// Get returns one user profile
func (s *Svc) Get(ctx context.Context, uid string) (domain.User, error) {
	u, err := s.repo.Get(ctx, uid)
	if err != nil {
		return domain.User{}, userErr(err)
	}
	return u, nil
}

// UpdateProfile patches display fields on the caller's profile
func (s *Svc) UpdateProfile(ctx context.Context, uid string, patch domain.ProfilePatch) (domain.User, error) {
	if patch.Empty() {
		return domain.User{}, perr.Validationf("no fields to update")
	}
	var u domain.User
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		u, err = s.binder.Bind(q).UpdateProfile(ctx, uid, patch, s.clk.Now().UTC())
		return err
	})
	if err != nil {
		return domain.User{}, userErr(err)
	}
	return u, nil
}

// AssignSchedule sets the shift window and/or timezone for a user.
// Already-computed metrics are never recomputed on a schedule change
func (s *Svc) AssignSchedule(ctx context.Context, uid string, patch domain.SchedulePatch) (domain.User, error) {
	if patch.Empty() {
		return domain.User{}, perr.Validationf("schedule or timezone required")
	}
	if patch.Schedule != nil {
		sh, sm, okStart := timecalc.ParseHHMM(patch.Schedule.Start)
		eh, em, okEnd := timecalc.ParseHHMM(patch.Schedule.End)
		if !okStart || !okEnd {
			return domain.User{}, perr.Validationf("schedule times must be HH:MM")
		}
		if sh*60+sm >= eh*60+em {
			return domain.User{}, perr.Validationf("schedule start must come before schedule end")
		}
	}
	if patch.Timezone != nil && strings.TrimSpace(*patch.Timezone) == "" {
		return domain.User{}, perr.Validationf("timezone cannot be blank")
	}

	var u domain.User
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		u, err = s.binder.Bind(q).UpdateSchedule(ctx, uid, patch, s.clk.Now().UTC())
		return err
	})
	if err != nil {
		return domain.User{}, userErr(err)
	}
	return u, nil
}

// All lists every user, oldest account first
func (s *Svc) All(ctx context.Context) ([]domain.User, error) {
	return s.repo.All(ctx)
}

// userErr rebrands a bare repo not-found so callers see which entity was missing
func userErr(err error) error {
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.NotFoundf("user not found")
	}
	return err
}
