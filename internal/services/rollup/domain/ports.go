package domain

import (
	"context"

	"timeclock/internal/core/timecalc"
)

// AggregatorPort is the write surface the punch service drives
type AggregatorPort interface {
	// Upsert folds one just-closed punch into its day summary (or creates it).
	// Order-sensitive: correct only when called as punches close in real time
	Upsert(ctx context.Context, uid, workDate string, m timecalc.Metrics, ref PunchRef) error

	// Rebuild recomputes a day summary from the attendance rows themselves.
	// Idempotent; deletes the summary when no completed punches remain
	Rebuild(ctx context.Context, uid, workDate string) error
}

// ReportsPort is the read surface behind the summary and report endpoints
type ReportsPort interface {
	Daily(ctx context.Context, uid, date string) (Summary, error)
	Weekly(ctx context.Context, uid, startDate, endDate string) (WeekReport, error)
	AllDaily(ctx context.Context, date string) ([]EmployeeDay, error)
	AllWeekly(ctx context.Context, startDate, endDate string) ([]EmployeeWeek, error)
}

// Repo abstracts summary storage plus the attendance rows rebuild reads
type Repo interface {
	Get(ctx context.Context, id string) (Summary, error)

	// Put writes the whole summary document, inserting or replacing
	Put(ctx context.Context, s Summary) error

	// Delete removes a summary; deleting an absent id is not an error
	Delete(ctx context.Context, id string) error

	ByWorkDate(ctx context.Context, workDate string) ([]Summary, error)
	ByUserRange(ctx context.Context, uid, startDate, endDate string) ([]Summary, error)
	ByRange(ctx context.Context, startDate, endDate string) ([]Summary, error)

	// RecordsForUser returns every attendance row for uid regardless of
	// status; callers filter in memory
	RecordsForUser(ctx context.Context, uid string) ([]PunchRecord, error)
}
