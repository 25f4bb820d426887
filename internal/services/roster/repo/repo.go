// Package repo provides Postgres bindings for the roster domain.Repo
package repo

import (
	"context"
	"time"

	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit/repokit"
	perr "timeclock/internal/platform/errors"
	"timeclock/internal/platform/store"
	"timeclock/internal/services/roster/domain"
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

// userCols is the select list every user read shares; scanUser must match it
const userCols = `uid, email, password_hash, role,
first_name, last_name, department, position,
schedule_start, schedule_end, timezone, created_at, updated_at`

// userRec pairs a domain user with its password hash so credential
// checks can read both in one round trip
type userRec struct {
	user domain.User
	hash string
}

func scanUser(row repokit.Row) (userRec, error) {
	var (
		rec        userRec
		role       string
		schedStart *string
		schedEnd   *string
	)
	if err := row.Scan(
		&rec.user.UID,
		&rec.user.Email,
		&rec.hash,
		&role,
		&rec.user.FirstName,
		&rec.user.LastName,
		&rec.user.Department,
		&rec.user.Position,
		&schedStart,
		&schedEnd,
		&rec.user.Timezone,
		&rec.user.CreatedAt,
		&rec.user.UpdatedAt,
	); err != nil {
		return userRec{}, err
	}
	rec.user.Role = domain.Role(role)
	if schedStart != nil && schedEnd != nil {
		rec.user.Schedule = timecalc.Schedule{Start: *schedStart, End: *schedEnd}
	}
	return rec, nil
}

func (r *queries) Create(ctx context.Context, u domain.User, passwordHash string) error {
	const sql = `
insert into users (
  uid, email, password_hash, role,
  first_name, last_name, department, position,
  schedule_start, schedule_end, timezone, created_at, updated_at
) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`
	var schedStart, schedEnd *string
	if u.HasSchedule() {
		schedStart, schedEnd = &u.Schedule.Start, &u.Schedule.End
	}
	_, err := r.q.Exec(ctx, sql,
		u.UID, u.Email, passwordHash, string(u.Role),
		u.FirstName, u.LastName, u.Department, u.Position,
		schedStart, schedEnd, u.Timezone, u.CreatedAt, u.UpdatedAt,
	)
	return perr.FromPostgresWithField(err, "insert user")
}

func (r *queries) Get(ctx context.Context, uid string) (domain.User, error) {
	rec, err := store.One(ctx, r.q, scanUser,
		`select `+userCols+` from users where uid = $1`, uid)
	if err != nil {
		return domain.User{}, err
	}
	return rec.user, nil
}

func (r *queries) GetByEmail(ctx context.Context, email string) (domain.User, string, error) {
	rec, err := store.One(ctx, r.q, scanUser,
		`select `+userCols+` from users where email = $1`, email)
	if err != nil {
		return domain.User{}, "", err
	}
	return rec.user, rec.hash, nil
}

func (r *queries) UpdateProfile(
	ctx context.Context, uid string, patch domain.ProfilePatch, at time.Time,
) (domain.User, error) {
	// coalesce keeps columns whose patch field is nil
	const sql = `
update users set
  first_name = coalesce($2, first_name),
  last_name  = coalesce($3, last_name),
  department = coalesce($4, department),
  position   = coalesce($5, position),
  updated_at = $6
where uid = $1
returning ` + userCols
	rec, err := store.One(ctx, r.q, scanUser, sql,
		uid, patch.FirstName, patch.LastName, patch.Department, patch.Position, at)
	if err != nil {
		return domain.User{}, err
	}
	return rec.user, nil
}

func (r *queries) UpdateSchedule(
	ctx context.Context, uid string, patch domain.SchedulePatch, at time.Time,
) (domain.User, error) {
	var schedStart, schedEnd *string
	if patch.Schedule != nil {
		schedStart, schedEnd = &patch.Schedule.Start, &patch.Schedule.End
	}
	const sql = `
update users set
  schedule_start = coalesce($2, schedule_start),
  schedule_end   = coalesce($3, schedule_end),
  timezone       = coalesce($4, timezone),
  updated_at     = $5
where uid = $1
returning ` + userCols
	rec, err := store.One(ctx, r.q, scanUser, sql, uid, schedStart, schedEnd, patch.Timezone, at)
	if err != nil {
		return domain.User{}, err
	}
	return rec.user, nil
}

func (r *queries) All(ctx context.Context) ([]domain.User, error) {
	recs, err := store.Many(ctx, r.q, scanUser,
		`select `+userCols+` from users order by created_at asc, uid asc`)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, len(recs))
	for i, rec := range recs {
		users[i] = rec.user
	}
	return users, nil
}
