// Package board assembles the values displayed on each tick.
package board

import (
	"github.com/zapponejosh/holiday-countdown/internal/calendar"
	"github.com/zapponejosh/holiday-countdown/internal/commentary"
	"github.com/zapponejosh/holiday-countdown/internal/countdown"
	"github.com/zapponejosh/holiday-countdown/internal/holiday"
)

// Entry is the countdown state for one holiday.
type Entry struct {
	Holiday   holiday.Holiday
	Date      calendar.Date
	Remaining countdown.Duration
	Tier      commentary.Tier
	Quip      string
}

// Board holds every holiday's entry for one captured moment.
type Board struct {
	Now     calendar.Moment
	Entries []Entry
}

// Compute resolves, diffs and annotates every holiday against now.
// The same moment drives both the date resolution and the countdown so the
// two never disagree about what "today" is.
func Compute(now calendar.Moment, engine countdown.Engine) Board {
	holidays := holiday.All()
	b := Board{Now: now, Entries: make([]Entry, 0, len(holidays))}
	for _, h := range holidays {
		b.Entries = append(b.Entries, ComputeEntry(now, h, engine))
	}
	return b
}

// ComputeEntry computes a single holiday's entry.
func ComputeEntry(now calendar.Moment, h holiday.Holiday, engine countdown.Engine) Entry {
	date := h.Next(now)
	remaining := engine.Diff(now, date)
	return Entry{
		Holiday:   h,
		Date:      date,
		Remaining: remaining,
		Tier:      commentary.TierFor(remaining.Days),
		Quip:      commentary.Quip(remaining.Days, h),
	}
}

// Entry returns the entry for h, if present.
func (b Board) Entry(h holiday.Holiday) (Entry, bool) {
	for _, e := range b.Entries {
		if e.Holiday == h {
			return e, true
		}
	}
	return Entry{}, false
}
