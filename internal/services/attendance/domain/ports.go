package domain

import (
	"context"
	"time"

	"timeclock/internal/core/timecalc"
)

// PunchPort is the employee-facing punch surface
type PunchPort interface {
	Status(ctx context.Context, uid string) (StatusView, error)
	PunchIn(ctx context.Context, uid string) (Record, error)
	PunchOut(ctx context.Context, uid string) (Record, error)
	Cancel(ctx context.Context, uid, attendanceID string) (Record, error)
	History(ctx context.Context, uid, startDate, endDate string) ([]Record, error)
}

// AdminPort is the punch editor surface
type AdminPort interface {
	ListFor(ctx context.Context, uid, startDate, endDate string) ([]Record, error)
	EditPunch(ctx context.Context, punchID string, patch PunchPatch) (Record, error)
	DeletePunch(ctx context.Context, punchID string) error
}

// Repo abstracts punch record storage
type Repo interface {
	Create(ctx context.Context, r Record) error
	Get(ctx context.Context, id string) (Record, error)

	// OpenFor returns the user's single open record, or not-found
	OpenFor(ctx context.Context, uid string) (Record, error)

	// Close completes an open pair with its computed metrics
	Close(ctx context.Context, id string, punchOut time.Time, m timecalc.Metrics, at time.Time) (Record, error)

	// Void cancels an open punch, keeping the row out of aggregation
	Void(ctx context.Context, id, reason string, at time.Time) (Record, error)

	// Replace rewrites the pair and metrics and closes the record (admin edit)
	Replace(ctx context.Context, id string, punchIn, punchOut time.Time, m timecalc.Metrics, at time.Time) (Record, error)

	// SetPunchIn moves punch-in on a record whose pair is still incomplete
	SetPunchIn(ctx context.Context, id string, punchIn time.Time, at time.Time) (Record, error)

	Delete(ctx context.Context, id string) error

	// ListRange returns records with punch_in inside [from, to], newest first
	ListRange(ctx context.Context, uid string, from, to time.Time) ([]Record, error)
}
