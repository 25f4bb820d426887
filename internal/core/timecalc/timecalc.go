// Package timecalc implements the attendance metrics engine: a pure mapping
// from one punch pair and a shift schedule to per-category labor hours
package timecalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD format used for work dates throughout
const DateLayout = "2006-01-02"

// defaultOffsetHours pins the local zone to UTC+8; no DST
const defaultOffsetHours = 8

// night differential window, local clock: 22:00 through 06:00 next day
const (
	nightStartHour = 22
	nightEndHour   = 6
)

// Schedule is a user's daily shift window as local clock-face times
// both ends sit on the same calendar day with Start < End
type Schedule struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// Metrics is the per-punch-pair breakdown produced by Compute
type Metrics struct {
	WorkDate         string  `json:"workDate"`
	RegularHours     float64 `json:"regularHours"`
	OvertimeHours    float64 `json:"overtimeHours"`
	NightDiffHours   float64 `json:"nightDiffHours"`
	TotalWorkedHours float64 `json:"totalWorkedHours"`
	LateMinutes      int     `json:"lateMinutes"`
	UndertimeMinutes int     `json:"undertimeMinutes"`
}

// Engine computes labor metrics in a fixed-offset local zone
type Engine struct {
	loc *time.Location
}

// New returns an Engine pinned to the default UTC+8 zone
func New() *Engine { return NewWithOffset(defaultOffsetHours) }

// NewWithOffset returns an Engine for a fixed UTC offset in whole hours
// the offset never varies by date; DST zones are out of contract
func NewWithOffset(hours int) *Engine {
	name := fmt.Sprintf("UTC%+d", hours)
	return &Engine{loc: time.FixedZone(name, hours*3600)}
}

// Location exposes the engine's local zone for date math done by callers
func (e *Engine) Location() *time.Location { return e.loc }

// Compute maps one punch pair and its schedule to a Metrics value.
// Pure, no I/O, total: every category bottoms out at zero via the
// max/empty-overlap rules, so out-of-order inputs cannot go negative.
//
// All interval math runs on integer milliseconds since epoch. The punch-out
// is capped at local next-midnight-minus-1ms; whatever extends past that is
// not attributed to the next day.
func (e *Engine) Compute(punchIn, punchOut time.Time, sched Schedule) Metrics {
	pi := punchIn.UnixMilli()

	local := punchIn.In(e.loc)
	y, m, d := local.Date()
	workDate := time.Date(y, m, d, 0, 0, 0, 0, e.loc)

	schedStart := e.at(workDate, sched.Start).UnixMilli()
	schedEnd := e.at(workDate, sched.End).UnixMilli()

	endOfWorkDay := workDate.AddDate(0, 0, 1).UnixMilli() - 1
	po := min(punchOut.UnixMilli(), endOfWorkDay)

	regularMs := overlap(pi, po, schedStart, schedEnd)

	// early arrival is never credited: it neither reduces late nor
	// inflates regular/total
	lateMs := max(pi-schedStart, 0)

	// leaving before even arriving owes the remaining schedule from
	// schedStart, not from the punch; po == schedStart is a full-day miss
	var undertimeMs int64
	if po < schedEnd {
		undertimeMs = max(schedEnd-max(po, schedStart), 0)
	}

	// overtime starts at the punch-in when the whole pair sits after the
	// schedule window, not at schedEnd
	overtimeMs := max(po-max(pi, schedEnd), 0)

	nightMs := e.nightDiffMs(pi, po, workDate)

	return Metrics{
		WorkDate:         workDate.Format(DateLayout),
		RegularHours:     toHours(regularMs),
		OvertimeHours:    toHours(overtimeMs),
		NightDiffHours:   toHours(nightMs),
		TotalWorkedHours: toHours(regularMs + overtimeMs),
		LateMinutes:      toMinutes(lateMs),
		UndertimeMinutes: toMinutes(undertimeMs),
	}
}

// nightDiffMs sums the overlap of [pi,po] with every local 22:00-06:00
// window that intersects it. The scan is anchored one day before the work
// date so graveyard punches that start before 06:00 are captured, and it
// advances a day at a time until the window opens at or after po
func (e *Engine) nightDiffMs(pi, po int64, workDate time.Time) int64 {
	var total int64
	for day := workDate.AddDate(0, 0, -1); ; day = day.AddDate(0, 0, 1) {
		winStart := day.Add(nightStartHour * time.Hour).UnixMilli()
		winEnd := day.AddDate(0, 0, 1).Add(nightEndHour * time.Hour).UnixMilli()
		if winStart >= po {
			break
		}
		total += overlap(pi, po, winStart, winEnd)
	}
	return total
}

// at projects a local HH:MM onto day; malformed input counts as midnight,
// schedule shape is validated upstream before it ever reaches the engine
func (e *Engine) at(day time.Time, hhmm string) time.Time {
	h, m := parseHHMM(hhmm)
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

// overlap returns the length of the intersection of [aStart,aEnd] and [bStart,bEnd]
func overlap(aStart, aEnd, bStart, bEnd int64) int64 {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}

// toHours rounds milliseconds to hours at 2 decimal places
func toHours(ms int64) float64 {
	return math.Round(float64(ms)/3_600_000*100) / 100
}

// toMinutes rounds milliseconds to whole minutes
func toMinutes(ms int64) int {
	return int(math.Round(float64(ms) / 60_000))
}

func parseHHMM(s string) (int, int) {
	h, m, ok := ParseHHMM(s)
	if !ok {
		return 0, 0
	}
	return h, m
}

// ParseHHMM splits a 24h HH:MM clock time into hour and minute.
// ok is false when the string is malformed or out of range
func ParseHHMM(s string) (hour, minute int, ok bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(hh))
	m, err2 := strconv.Atoi(strings.TrimSpace(mm))
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// ValidHHMM reports whether s is a well-formed 24h HH:MM clock time
func ValidHHMM(s string) bool {
	_, _, ok := ParseHHMM(s)
	return ok
}
