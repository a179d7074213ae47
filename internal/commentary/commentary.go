// Package commentary maps a remaining-day count to a canned quip.
package commentary

import (
	"fmt"

	"github.com/zapponejosh/holiday-countdown/internal/holiday"
)

// Tier is a bucket of remaining-day counts.
type Tier int

const (
	Today     Tier = iota // 0 days
	Tomorrow              // 1 day
	ThisWeek              // 2..6 days
	ThisMonth             // 7..30 days
	Later                 // 31 days or more
)

var tierNames = [...]string{"today", "tomorrow", "this_week", "this_month", "later"}

// String returns the tier's identifier, e.g. "this_week".
func (t Tier) String() string {
	if t < Today || t > Later {
		return "unknown"
	}
	return tierNames[t]
}

// MarshalText lets tiers appear by name in JSON.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a tier name produced by MarshalText.
func (t *Tier) UnmarshalText(text []byte) error {
	for i, name := range tierNames {
		if string(text) == name {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown commentary tier %q", text)
}

// TierFor returns the tier for daysLeft. Negative counts are treated as
// Today.
func TierFor(daysLeft int64) Tier {
	switch {
	case daysLeft <= 0:
		return Today
	case daysLeft == 1:
		return Tomorrow
	case daysLeft <= 6:
		return ThisWeek
	case daysLeft <= 30:
		return ThisMonth
	default:
		return Later
	}
}

var quips = map[holiday.Holiday][5]string{
	holiday.Thanksgiving: {
		Today:     "🦃 It’s today! Pace yourself—gravy is not a beverage.",
		Tomorrow:  "🦃 Tomorrow: begin strategic pie negotiations.",
		ThisWeek:  "🦃 Prep mode: assign a stuffing CTO and a cranberry PM.",
		ThisMonth: "🦃 Consider a mashed-potato proof of concept.",
		Later:     "🦃 Training season: practice polite seconds-refusal face.",
	},
	holiday.Christmas: {
		Today:     "🎄 It’s today! Batteries not included—coffee mandatory.",
		Tomorrow:  "🎄 Tomorrow: act surprised like a pro.",
		ThisWeek:  "🎄 Stealth wrap operations entering code freeze.",
		ThisMonth: "🎄 Calibrating carols. Jingle bells in QA.",
		Later:     "🎄 Elf standup at 9. Santa ships on 12/25.",
	},
}

// Quip returns the commentary for h with daysLeft days remaining.
func Quip(daysLeft int64, h holiday.Holiday) string {
	return quips[h][TierFor(daysLeft)]
}
