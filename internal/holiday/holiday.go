// Package holiday resolves the next occurrence of each tracked holiday.
package holiday

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/zapponejosh/holiday-countdown/internal/calendar"
)

// ErrUnknownHoliday is returned by Parse for an unrecognized holiday name.
var ErrUnknownHoliday = errors.New("unknown holiday")

// Holiday identifies one of the tracked holidays.
type Holiday int

const (
	Thanksgiving Holiday = iota
	Christmas
)

// All returns every tracked holiday in display order.
func All() []Holiday {
	return []Holiday{Thanksgiving, Christmas}
}

// definition returns the published US holiday definition.
func (h Holiday) definition() *cal.Holiday {
	if h == Christmas {
		return us.ChristmasDay
	}
	return us.ThanksgivingDay
}

// Name returns the official holiday name, e.g. "Thanksgiving Day".
func (h Holiday) Name() string {
	return h.definition().Name
}

// Slug returns the lowercase identifier used in URLs and flags.
func (h Holiday) Slug() string {
	if h == Christmas {
		return "christmas"
	}
	return "thanksgiving"
}

// Rule describes how the holiday's date is determined.
func (h Holiday) Rule() string {
	if h == Christmas {
		return "fixed on Dec 25"
	}
	return "4th Thursday in November"
}

// String implements fmt.Stringer.
func (h Holiday) String() string {
	return h.Slug()
}

// Next returns the next-or-same occurrence of h relative to now.
func (h Holiday) Next(now calendar.Moment) calendar.Date {
	if h == Christmas {
		return NextChristmas(now)
	}
	return NextThanksgiving(now)
}

// Parse looks up a holiday by slug or official name, ignoring case.
func Parse(s string) (Holiday, error) {
	s = strings.TrimSpace(s)
	for _, h := range All() {
		if strings.EqualFold(s, h.Slug()) || strings.EqualFold(s, h.Name()) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHoliday, s)
}
