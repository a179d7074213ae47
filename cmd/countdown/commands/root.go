package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/holiday-countdown/internal/calendar"
	"github.com/zapponejosh/holiday-countdown/internal/config"
	"github.com/zapponejosh/holiday-countdown/internal/countdown"
	"github.com/zapponejosh/holiday-countdown/internal/logger"
)

// app is the state shared by all subcommands once the root pre-run hook
// has executed.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	clock  calendar.Clock
	engine countdown.Engine
	at     string
	stderr io.Writer
}

// now returns the moment to evaluate: --at when given, else the clock.
func (a *app) now() (calendar.Moment, error) {
	if a.at == "" {
		return a.clock.Now(), nil
	}
	return calendar.ParseMoment(a.at, a.engine.Location())
}

// Execute runs the CLI with os.Args, cancelling on SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd(calendar.SystemClock{}, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(clock calendar.Clock, stderr io.Writer) *cobra.Command {
	a := &app{
		clock:  clock,
		engine: countdown.Local(),
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:          "countdown",
		Short:        "Countdown to the next Thanksgiving and Christmas",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.Setup(cfg, a.stderr)
			return nil
		},
	}

	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.at, "at", "", "evaluate at this local moment (YYYY-MM-DD[THH:MM:SS]) instead of now")

	root.AddCommand(showCmd(a), watchCmd(a), datesCmd(a))
	return root
}
