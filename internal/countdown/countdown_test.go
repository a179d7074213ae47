package countdown

import (
	"testing"
	"time"

	"github.com/zapponejosh/holiday-countdown/internal/calendar"
)

var utc = NewEngine(time.UTC)

func TestDiff_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		now    calendar.Moment
		target calendar.Date
		want   Duration
	}{
		{
			name:   "target is now",
			now:    calendar.Moment{Year: 2024, Month: time.November, Day: 28},
			target: calendar.NewDate(2024, time.November, 28),
			want:   Duration{},
		},
		{
			name:   "target in the past",
			now:    calendar.Moment{Year: 2024, Month: time.November, Day: 28, Hour: 15, Minute: 4},
			target: calendar.NewDate(2024, time.November, 28),
			want:   Duration{},
		},
		{
			name:   "ninety minutes before midnight",
			now:    calendar.Moment{Year: 2024, Month: time.December, Day: 24, Hour: 22, Minute: 30},
			target: calendar.NewDate(2024, time.December, 25),
			want:   Duration{Hours: 1, Minutes: 30},
		},
		{
			name:   "boxing day to next christmas",
			now:    calendar.Moment{Year: 2024, Month: time.December, Day: 26},
			target: calendar.NewDate(2025, time.December, 25),
			want:   Duration{Days: 364},
		},
		{
			name:   "sub-second remainder dropped",
			now:    calendar.Moment{Year: 2024, Month: time.December, Day: 24, Hour: 23, Minute: 59, Second: 58, Millisecond: 1},
			target: calendar.NewDate(2024, time.December, 25),
			want:   Duration{Seconds: 1},
		},
		{
			name:   "all fields populated",
			now:    calendar.Moment{Year: 2024, Month: time.December, Day: 17, Hour: 20, Minute: 50, Second: 55},
			target: calendar.NewDate(2024, time.December, 25),
			want:   Duration{Days: 7, Hours: 3, Minutes: 9, Seconds: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utc.Diff(tt.now, tt.target)
			if got != tt.want {
				t.Errorf("Diff() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDiff_NeverNegative(t *testing.T) {
	target := calendar.NewDate(2024, time.December, 25)
	start := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24*10; i++ {
		now := calendar.MomentOf(start.Add(time.Duration(i) * 37 * time.Minute))
		d := utc.Diff(now, target)
		if d.Days < 0 || d.Hours < 0 || d.Minutes < 0 || d.Seconds < 0 {
			t.Fatalf("Diff(%s) = %+v, negative field", now, d)
		}
		if d.Hours > 23 || d.Minutes > 59 || d.Seconds > 59 {
			t.Fatalf("Diff(%s) = %+v, field out of range", now, d)
		}
	}
}

func TestDiff_DecompositionConsistency(t *testing.T) {
	target := calendar.NewDate(2025, time.November, 27)
	start := time.Date(2024, time.December, 26, 3, 4, 5, 678000000, time.UTC)
	for i := 0; i < 500; i++ {
		at := start.Add(time.Duration(i) * 17 * time.Hour).Add(time.Duration(i) * 333 * time.Millisecond)
		now := calendar.MomentOf(at)
		deltaMillis := calendar.EpochMillis(target.Midnight(), time.UTC) - calendar.EpochMillis(now, time.UTC)
		if deltaMillis < 0 {
			break
		}
		got := utc.Diff(now, target)
		if got.TotalSeconds() != deltaMillis/1000 {
			t.Fatalf("Diff(%s).TotalSeconds() = %d, want %d", now, got.TotalSeconds(), deltaMillis/1000)
		}
	}
}

func TestDiff_Monotonic(t *testing.T) {
	target := calendar.NewDate(2024, time.December, 25)
	now := calendar.Moment{Year: 2024, Month: time.December, Day: 24, Hour: 23, Minute: 58, Millisecond: 500}

	prev := utc.Diff(now, target).TotalSeconds()
	for i := 0; i < 300; i++ {
		now = now.Add(time.Second, time.UTC)
		got := utc.Diff(now, target).TotalSeconds()
		switch {
		case prev == 0 && got != 0:
			t.Fatalf("at %s: remaining rose from 0 to %d", now, got)
		case prev > 0 && got != prev-1:
			t.Fatalf("at %s: remaining = %d, want %d", now, got, prev-1)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("countdown did not reach zero, remaining %d", prev)
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		seconds int64
		want    Duration
	}{
		{-5, Duration{}},
		{0, Duration{}},
		{59, Duration{Seconds: 59}},
		{60, Duration{Minutes: 1}},
		{3599, Duration{Minutes: 59, Seconds: 59}},
		{86399, Duration{Hours: 23, Minutes: 59, Seconds: 59}},
		{86400, Duration{Days: 1}},
		{1000 * 86400, Duration{Days: 1000}},
	}

	for _, tt := range tests {
		got := Decompose(tt.seconds)
		if got != tt.want {
			t.Errorf("Decompose(%d) = %+v, want %+v", tt.seconds, got, tt.want)
		}
		if tt.seconds > 0 && got.TotalSeconds() != tt.seconds {
			t.Errorf("Decompose(%d).TotalSeconds() = %d", tt.seconds, got.TotalSeconds())
		}
	}
}

func TestDuration_String(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{}, "00d 00h 00m 00s"},
		{Duration{Days: 7, Hours: 3, Minutes: 9, Seconds: 5}, "07d 03h 09m 05s"},
		{Duration{Days: 364}, "364d 00h 00m 00s"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewEngine_NilLocation(t *testing.T) {
	if got := NewEngine(nil).Location(); got != time.Local {
		t.Errorf("Location() = %v, want Local", got)
	}
	if got := (Engine{}).Location(); got != time.Local {
		t.Errorf("zero Engine Location() = %v, want Local", got)
	}
}
