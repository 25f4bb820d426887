// Package clock provides an injectable wall clock
package clock

import "time"

// Clock is the wall clock seam for anything that timestamps mutations
// Production code takes a Clock dependency so tests can pin the instant
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock in UTC
type System struct{}

// Now returns the current UTC instant
func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant
type Fixed struct{ T time.Time }

// Now returns the pinned instant
func (f Fixed) Now() time.Time { return f.T }

// Stepped hands out instants in order and repeats the last one once drained
type Stepped struct {
	Ts []time.Time
	i  int
}

// Now returns the next instant in the sequence
func (s *Stepped) Now() time.Time {
	if len(s.Ts) == 0 {
		return time.Time{}
	}
	t := s.Ts[s.i]
	if s.i < len(s.Ts)-1 {
		s.i++
	}
	return t
}
