// Package calendar provides the date and wall-clock primitives the countdown
// is computed from.
//
// All calendar math is delegated to the time package so that weekdays and
// millisecond offsets always agree with the host's local-time calendar.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Compare orders dates lexicographically by year, month and day.
// It returns -1 if d is before other, +1 if after and 0 if equal.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return WeekdayOf(d.Year, d.Month, d.Day)
}

// Midnight returns the Moment at 00:00:00.000 on d.
func (d Date) Midnight() Moment {
	return Moment{Year: d.Year, Month: d.Month, Day: d.Day}
}

// String formats d as Y/M/D without zero padding, e.g. 2024/11/28.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Year, int(d.Month), d.Day)
}

// ISO formats d as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// WeekdayOf returns the weekday (Sunday = 0) of the given date.
func WeekdayOf(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
