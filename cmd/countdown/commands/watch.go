package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/holiday-countdown/internal/board"
	"github.com/zapponejosh/holiday-countdown/internal/calendar"
	"github.com/zapponejosh/holiday-countdown/internal/display"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

func watchCmd(a *app) *cobra.Command {
	var (
		every   time.Duration
		count   int
		noClear bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render both countdowns on every tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("every") {
				every = a.cfg.TickInterval
			}
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}

			clock := a.clock
			if a.at != "" {
				start, err := a.now()
				if err != nil {
					return err
				}
				clock = advancingClock(start, a.clock)
			}

			w := &display.Watcher{
				Clock:    clock,
				Engine:   a.engine,
				Interval: every,
				Logger:   a.log,
			}

			out := cmd.OutOrStdout()
			rendered := 0
			return w.Run(cmd.Context(), func(b board.Board) error {
				if err := renderTick(out, b, !noClear); err != nil {
					return err
				}
				rendered++
				if count > 0 && rendered >= count {
					return display.ErrStop
				}
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&every, "every", time.Second, "refresh interval (defaults to TICK_INTERVAL)")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many renders (0 runs until interrupted)")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "append each render instead of clearing the screen")
	return cmd
}

func renderTick(w io.Writer, b board.Board, clear bool) error {
	if clear {
		if _, err := io.WriteString(w, clearScreen); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return display.Render(w, b)
}

// advancingClock starts at start and moves forward with real elapsed time
// as measured by base, so --at can be combined with watch.
func advancingClock(start calendar.Moment, base calendar.Clock) calendar.Clock {
	origin := calendar.EpochMillis(base.Now(), time.Local)
	return calendar.ClockFunc(func() calendar.Moment {
		elapsed := calendar.EpochMillis(base.Now(), time.Local) - origin
		return start.Add(time.Duration(elapsed)*time.Millisecond, time.Local)
	})
}
