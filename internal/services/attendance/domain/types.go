// Package domain defines the core types and interfaces for the attendance service
package domain

import (
	"time"

	"timeclock/internal/core/timecalc"
	rollupdom "timeclock/internal/services/rollup/domain"
)

// Status is the lifecycle state of a punch record
type Status string

const (
	// StatusOpen is a punch-in waiting for its punch-out
	StatusOpen Status = "open"

	// StatusVoided is a cancelled open punch; kept, never aggregated
	StatusVoided Status = "voided"

	// StatusClosed is a completed punch pair with metrics
	StatusClosed Status = "closed"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusVoided || s == StatusClosed
}

// Record is one punch pair. PunchOut and Metrics are set iff the record
// is closed; VoidedAt and VoidReason are zero unless it is voided
type Record struct {
	ID          string
	UID         string
	PunchIn     time.Time
	PunchOut    *time.Time
	Status      Status
	Metrics     *timecalc.Metrics
	VoidedAt    time.Time
	VoidReason  string
	AdminEdited bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StatusView is the employee dashboard snapshot
type StatusView struct {
	PunchedIn    bool
	OpenPunch    *Record
	TodaySummary *rollupdom.Summary
}

// PunchPatch is an admin edit; nil fields fall back to the stored values
type PunchPatch struct {
	PunchIn  *time.Time
	PunchOut *time.Time
}

// Empty reports whether the patch changes nothing
func (p PunchPatch) Empty() bool { return p.PunchIn == nil && p.PunchOut == nil }
