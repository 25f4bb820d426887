package domain

import (
	"context"
	"time"
)

// UsersPort is the read surface other services consume
// (attendance schedule lookups, report enrichment)
type UsersPort interface {
	Get(ctx context.Context, uid string) (User, error)
	All(ctx context.Context) ([]User, error)
}

// AccountsPort is the self-service surface behind /auth
type AccountsPort interface {
	Register(ctx context.Context, in NewUser) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Get(ctx context.Context, uid string) (User, error)
	UpdateProfile(ctx context.Context, uid string, patch ProfilePatch) (User, error)
}

// AdminPort is the roster surface behind /admin
type AdminPort interface {
	AssignSchedule(ctx context.Context, uid string, patch SchedulePatch) (User, error)
	All(ctx context.Context) ([]User, error)
}

// Repo abstracts user storage
type Repo interface {
	// Create inserts a new user row; a duplicate email surfaces as a
	// duplicate-key error for the service to classify
	Create(ctx context.Context, u User, passwordHash string) error

	Get(ctx context.Context, uid string) (User, error)

	// GetByEmail returns the user and its password hash for credential checks
	GetByEmail(ctx context.Context, email string) (User, string, error)

	UpdateProfile(ctx context.Context, uid string, patch ProfilePatch, at time.Time) (User, error)
	UpdateSchedule(ctx context.Context, uid string, patch SchedulePatch, at time.Time) (User, error)

	All(ctx context.Context) ([]User, error)
}
