// Package domain defines the summary reconciliation contract
package domain

import "context"

// Report summarizes one reconciliation run
type Report struct {
	Users   int // distinct users visited
	Days    int // calendar days covered
	Rebuilt int // successful rebuild calls
}

// RunnerPort drives a range reconciliation: every (user, workDate) pair in
// the range gets its day summary rebuilt from the attendance rows
type RunnerPort interface {
	// RunRange rebuilds startDate..endDate inclusive. uid narrows the run
	// to one user; empty means every registered user
	RunRange(ctx context.Context, startDate, endDate, uid string) (Report, error)
}
