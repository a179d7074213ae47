package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/holiday-countdown/internal/board"
	"github.com/zapponejosh/holiday-countdown/internal/display"
)

func showCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print both countdowns once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := a.now()
			if err != nil {
				return err
			}
			b := board.Compute(now, a.engine)
			a.log.Debug("board computed", slog.String("now", now.String()))
			return display.Render(cmd.OutOrStdout(), b)
		},
	}
	return cmd
}
