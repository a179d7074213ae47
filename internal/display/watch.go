package display

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/holiday-countdown/internal/board"
	"github.com/zapponejosh/holiday-countdown/internal/calendar"
	"github.com/zapponejosh/holiday-countdown/internal/countdown"
)

// DefaultInterval is how often Watch refreshes when no interval is set.
const DefaultInterval = time.Second

// Watcher recomputes the board from a fresh clock reading on every tick.
type Watcher struct {
	Clock    calendar.Clock
	Engine   countdown.Engine
	Interval time.Duration
	Logger   *slog.Logger
}

// Run calls fn with a newly computed board immediately and then once per
// interval until ctx is done or fn returns an error. Cancellation is a
// normal stop and returns nil.
func (w *Watcher) Run(ctx context.Context, fn func(board.Board) error) error {
	if fn == nil {
		return errors.New("watch: nil callback")
	}

	clock := w.Clock
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("watch started", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ticks := 0
	for {
		now := clock.Now()
		if err := fn(board.Compute(now, w.Engine)); err != nil {
			if errors.Is(err, ErrStop) {
				logger.Debug("watch stopped by callback", slog.Int("ticks", ticks+1))
				return nil
			}
			return fmt.Errorf("tick at %s: %w", now, err)
		}
		ticks++

		select {
		case <-ctx.Done():
			logger.Debug("watch cancelled", slog.Int("ticks", ticks))
			return nil
		case <-ticker.C:
		}
	}
}

// ErrStop may be returned by a Run callback to end the loop without error.
var ErrStop = errors.New("stop watching")
