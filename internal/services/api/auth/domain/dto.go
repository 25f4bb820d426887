// Package domain holds DTOs for the auth http surface
package domain

import (
	"time"

	rosterdom "timeclock/internal/services/roster/domain"
)

// RegisterInput creates an employee account
type RegisterInput struct {
	Email      string `json:"email"      validate:"required,email" example:"jane.cruz@acme.test"`
	Password   string `json:"password"   validate:"required,min=8,max=72" example:"correct-horse-battery"`
	FirstName  string `json:"firstName"  validate:"required,min=1,max=100" example:"Jane"`
	LastName   string `json:"lastName"   validate:"required,min=1,max=100" example:"Cruz"`
	Department string `json:"department" validate:"omitempty,max=100" example:"Engineering"`
	Position   string `json:"position"   validate:"omitempty,max=100" example:"Backend Engineer"`
}

// NewUser maps the request onto the roster input
func (in RegisterInput) NewUser() rosterdom.NewUser {
	return rosterdom.NewUser{
		Email:      in.Email,
		Password:   in.Password,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Department: in.Department,
		Position:   in.Position,
	}
}

// LoginInput exchanges credentials for a bearer token
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email" example:"jane.cruz@acme.test"`
	Password string `json:"password" validate:"required" example:"correct-horse-battery"`
}

// ProfilePatchInput updates display fields on the caller's profile
// absent fields are left unchanged
type ProfilePatchInput struct {
	FirstName  *string `json:"firstName"  validate:"omitempty,min=1,max=100" example:"Jane"`
	LastName   *string `json:"lastName"   validate:"omitempty,min=1,max=100" example:"Cruz"`
	Department *string `json:"department" validate:"omitempty,max=100" example:"Engineering"`
	Position   *string `json:"position"   validate:"omitempty,max=100" example:"Staff Engineer"`
}

// Patch maps the request onto the roster patch
func (in ProfilePatchInput) Patch() rosterdom.ProfilePatch {
	return rosterdom.ProfilePatch{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Department: in.Department,
		Position:   in.Position,
	}
}

// ScheduleDTO is the assigned shift window in local clock-face time
type ScheduleDTO struct {
	Start string `json:"start" example:"09:00"`
	End   string `json:"end"   example:"18:00"`
}

// UserDTO is the wire view of an employee profile
type UserDTO struct {
	UID        string       `json:"uid" example:"7f2c3a9e-1d44-4a6b-9c0f-5e8b2d711c3a"`
	Email      string       `json:"email" example:"jane.cruz@acme.test"`
	FirstName  string       `json:"firstName" example:"Jane"`
	LastName   string       `json:"lastName" example:"Cruz"`
	Department string       `json:"department,omitempty" example:"Engineering"`
	Position   string       `json:"position,omitempty" example:"Backend Engineer"`
	Role       string       `json:"role" example:"employee"`
	Schedule   *ScheduleDTO `json:"schedule,omitempty"`
	Timezone   string       `json:"timezone,omitempty" example:"Asia/Manila"`
	CreatedAt  time.Time    `json:"createdAt" example:"2024-01-02T03:04:05Z"`
	UpdatedAt  time.Time    `json:"updatedAt" example:"2024-01-02T03:04:05Z"`
}

// TokenResponse is a successful login: the signed token plus the profile
type TokenResponse struct {
	Token string  `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  UserDTO `json:"user"`
}

// UserView maps a roster user onto the wire shape
// schedule is omitted until a shift has been assigned
func UserView(u rosterdom.User) UserDTO {
	out := UserDTO{
		UID:        u.UID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		Position:   u.Position,
		Role:       string(u.Role),
		Timezone:   u.Timezone,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	if u.HasSchedule() {
		out.Schedule = &ScheduleDTO{Start: u.Schedule.Start, End: u.Schedule.End}
	}
	return out
}
