package calendar

import "time"

// Clock supplies the current local moment. The resolver and the countdown
// engine never read the time themselves; callers pass them a Moment taken
// from a Clock.
type Clock interface {
	Now() Moment
}

// SystemClock reads the host wall clock in local time.
type SystemClock struct{}

// Now returns the current local moment.
func (SystemClock) Now() Moment {
	return MomentOf(time.Now())
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() Moment

// Now calls f.
func (f ClockFunc) Now() Moment {
	return f()
}

// Fixed returns a Clock that always reports m.
func Fixed(m Moment) Clock {
	return ClockFunc(func() Moment { return m })
}
