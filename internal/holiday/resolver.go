package holiday

import (
	"time"

	"github.com/zapponejosh/holiday-countdown/internal/calendar"
)

// FourthThursdayOfNovember returns US Thanksgiving for year.
func FourthThursdayOfNovember(year int) calendar.Date {
	first := calendar.WeekdayOf(year, time.November, 1)
	return calendar.NewDate(year, time.November, fourthThursday(first))
}

// fourthThursday returns the day of month of the 4th Thursday in a
// 30-day month whose first day falls on first.
func fourthThursday(first time.Weekday) int {
	firstThursday := 1 + (7+int(time.Thursday)-int(first))%7
	day := firstThursday + 21
	// Unreachable: the 4th Thursday is always between the 22nd and 28th.
	if day > 30 {
		day -= 7
	}
	return day
}

// NextThanksgiving returns this year's Thanksgiving unless now's date is
// already past it, in which case next year's. Thanksgiving day itself
// counts as the next occurrence.
func NextThanksgiving(now calendar.Moment) calendar.Date {
	this := FourthThursdayOfNovember(now.Year)
	if now.Date().After(this) {
		return FourthThursdayOfNovember(now.Year + 1)
	}
	return this
}

// NextChristmas returns the next-or-same December 25 relative to now.
func NextChristmas(now calendar.Moment) calendar.Date {
	year := now.Year
	// month > 12 cannot come from a real clock reading.
	if now.Month > time.December || (now.Month == time.December && now.Day > 25) {
		year++
	}
	return calendar.NewDate(year, time.December, 25)
}
