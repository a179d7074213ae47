package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/holiday-countdown/internal/calendar"
	"github.com/zapponejosh/holiday-countdown/internal/holiday"
)

func datesCmd(a *app) *cobra.Command {
	var (
		from  int
		years int
	)

	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List resolved holiday dates for a range of years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if years < 1 || years > 1000 {
				return fmt.Errorf("--years must be between 1 and 1000, got %d", years)
			}
			if from == 0 {
				now, err := a.now()
				if err != nil {
					return err
				}
				from = now.Year
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "YEAR\tHOLIDAY\tDATE\tWEEKDAY")
			for y := from; y < from+years; y++ {
				for _, h := range holiday.All() {
					// Midnight on Jan 1 always resolves to the same year.
					d := h.Next(jan1(y))
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", y, h.Name(), d.ISO(), d.Weekday())
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "first year to list (defaults to the current year)")
	cmd.Flags().IntVar(&years, "years", 5, "number of years to list")
	return cmd
}

func jan1(year int) calendar.Moment {
	return calendar.NewDate(year, time.January, 1).Midnight()
}
