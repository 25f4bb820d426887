// Package domain defines the core types and interfaces for the roster service
package domain

import (
	"time"

	"timeclock/internal/core/timecalc"
)

// Role is the access level attached to an account
type Role string

const (
	// RoleEmployee is the default role for self-registered accounts
	RoleEmployee Role = "employee"

	// RoleAdmin unlocks the admin surface (punch edits, schedules, reports)
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool { return r == RoleEmployee || r == RoleAdmin }

// User is one employee profile. Password material never appears here;
// hashes stay inside the repo layer
type User struct {
	UID        string
	Email      string
	FirstName  string
	LastName   string
	Department string
	Position   string
	Role       Role
	Schedule   timecalc.Schedule // zero value means no shift assigned yet
	Timezone   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasSchedule reports whether a shift has been assigned
func (u User) HasSchedule() bool { return u.Schedule.Start != "" && u.Schedule.End != "" }

// NewUser is the input for account registration
type NewUser struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Department string
	Position   string
}

// ProfilePatch updates display fields; nil means leave unchanged
type ProfilePatch struct {
	FirstName  *string
	LastName   *string
	Department *string
	Position   *string
}

// Empty reports whether the patch changes nothing
func (p ProfilePatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Department == nil && p.Position == nil
}

// SchedulePatch updates the assigned shift and/or timezone; nil means leave unchanged
type SchedulePatch struct {
	Schedule *timecalc.Schedule
	Timezone *string
}

// Empty reports whether the patch changes nothing
func (p SchedulePatch) Empty() bool { return p.Schedule == nil && p.Timezone == nil }
