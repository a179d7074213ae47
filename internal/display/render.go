// Package display renders countdown boards as text and drives the
// once-per-tick refresh loop.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/zapponejosh/holiday-countdown/internal/board"
	"github.com/zapponejosh/holiday-countdown/internal/holiday"
)

// Title is printed above every rendered board.
const Title = "Dual Holiday Countdown — Thanksgiving 🦃 & Christmas 🎄"

// Label returns the card heading for h.
func Label(h holiday.Holiday) string {
	if h == holiday.Thanksgiving {
		return "Next Thanksgiving (US)"
	}
	return "Christmas"
}

// Render writes b as text, one card per holiday.
func Render(w io.Writer, b board.Board) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s\n", Title, strings.Repeat("=", 40))
	for _, e := range b.Entries {
		sb.WriteString("\n")
		writeEntry(&sb, e)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeEntry(sb *strings.Builder, e board.Entry) {
	fmt.Fprintf(sb, "%s\n", Label(e.Holiday))
	fmt.Fprintf(sb, "  %s\n", e.Remaining)
	fmt.Fprintf(sb, "  %s — %s\n", e.Date, e.Holiday.Rule())
	fmt.Fprintf(sb, "  %s\n", e.Quip)
}
