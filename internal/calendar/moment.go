package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidMoment is returned when a textual moment cannot be parsed.
var ErrInvalidMoment = errors.New("invalid moment")

// Moment is a snapshot of local wall-clock time at millisecond precision.
// A new Moment is captured on every tick; existing ones are never modified.
type Moment struct {
	Year        int
	Month       time.Month
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// MomentOf captures the wall-clock fields of t in t's own location.
func MomentOf(t time.Time) Moment {
	return Moment{
		Year:        t.Year(),
		Month:       t.Month(),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// Date drops the time of day from m.
func (m Moment) Date() Date {
	return Date{Year: m.Year, Month: m.Month, Day: m.Day}
}

// Time returns m as a time.Time in loc.
func (m Moment) Time(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second,
		m.Millisecond*int(time.Millisecond), loc)
}

// Add returns the Moment d after m, as seen from loc.
func (m Moment) Add(d time.Duration, loc *time.Location) Moment {
	return MomentOf(m.Time(loc).Add(d))
}

// String formats m as YYYY-MM-DD HH:MM:SS.mmm.
func (m Moment) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%03d",
		m.Year, int(m.Month), m.Day, m.Hour, m.Minute, m.Second, m.Millisecond)
}

// EpochMillis converts m to milliseconds since the Unix epoch in loc.
// The value is only meaningful for subtraction against another EpochMillis
// result taken in the same location.
func EpochMillis(m Moment, loc *time.Location) int64 {
	return m.Time(loc).UnixMilli()
}

// momentLayouts are tried in order by ParseMoment.
var momentLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseMoment parses s as a local moment in loc. Accepted forms are
// YYYY-MM-DD, YYYY-MM-DDTHH:MM[:SS[.mmm]] and RFC 3339. RFC 3339 input with
// an explicit offset is converted to loc.
func ParseMoment(s string, loc *time.Location) (Moment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Moment{}, fmt.Errorf("%w: empty value", ErrInvalidMoment)
	}
	for _, layout := range momentLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return MomentOf(t.In(loc)), nil
		}
	}
	return Moment{}, fmt.Errorf("%w: %q (use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)", ErrInvalidMoment, s)
}
