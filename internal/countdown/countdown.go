// Package countdown computes the time remaining until a target date.
package countdown

import (
	"fmt"
	"time"

	"github.com/zapponejosh/holiday-countdown/internal/calendar"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Duration is the time left until a target, split into 24-hour days,
// hours, minutes and seconds. No field is ever negative.
type Duration struct {
	Days    int64 `json:"days"`
	Hours   int   `json:"hours"`
	Minutes int   `json:"minutes"`
	Seconds int   `json:"seconds"`
}

// Decompose splits a non-negative number of seconds into a Duration.
// Negative input yields the zero Duration.
func Decompose(seconds int64) Duration {
	if seconds <= 0 {
		return Duration{}
	}
	return Duration{
		Days:    seconds / secondsPerDay,
		Hours:   int(seconds % secondsPerDay / secondsPerHour),
		Minutes: int(seconds % secondsPerHour / secondsPerMinute),
		Seconds: int(seconds % secondsPerMinute),
	}
}

// TotalSeconds returns the duration expressed in seconds.
func (d Duration) TotalSeconds() int64 {
	return d.Days*secondsPerDay +
		int64(d.Hours)*secondsPerHour +
		int64(d.Minutes)*secondsPerMinute +
		int64(d.Seconds)
}

// IsZero reports whether no time remains.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// String formats d as "07d 03h 09m 05s".
func (d Duration) String() string {
	return fmt.Sprintf("%02dd %02dh %02dm %02ds", d.Days, d.Hours, d.Minutes, d.Seconds)
}

// Engine computes countdowns against wall-clock time in a fixed location.
type Engine struct {
	loc *time.Location
}

// NewEngine returns an Engine that interprets moments and dates in loc.
// A nil loc means local time.
func NewEngine(loc *time.Location) Engine {
	if loc == nil {
		loc = time.Local
	}
	return Engine{loc: loc}
}

// Local returns an Engine for the host's local time zone.
func Local() Engine {
	return NewEngine(time.Local)
}

// Location returns the engine's time zone.
func (e Engine) Location() *time.Location {
	if e.loc == nil {
		return time.Local
	}
	return e.loc
}

// Diff returns the time from now until midnight at the start of target.
// The result is zero if target is not strictly in the future. Sub-second
// remainders are discarded.
func (e Engine) Diff(now calendar.Moment, target calendar.Date) Duration {
	loc := e.Location()
	deltaMillis := calendar.EpochMillis(target.Midnight(), loc) - calendar.EpochMillis(now, loc)
	if deltaMillis < 0 {
		deltaMillis = 0
	}
	return Decompose(deltaMillis / 1000)
}
