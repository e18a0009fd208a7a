package main

import (
	"fmt"
	"io"
	"time"

	"autocomplete/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const maxSummaryValue = 48

// ExitSummary is printed after the program leaves the alt screen.
type ExitSummary struct {
	Version  string
	Selected []string
	Failures int
	Duration time.Duration
}

// printExitSummary writes a two line session summary to w.
func printExitSummary(w io.Writer, summary ExitSummary) {
	t := theme.Current()
	appStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary())
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted())
	textStyle := lipgloss.NewStyle().Foreground(t.Text())
	errStyle := lipgloss.NewStyle().Foreground(t.Error())

	versionStr := ""
	if summary.Version != "" {
		versionStr = dimStyle.Render(fmt.Sprintf(" v%s", summary.Version))
	}
	sessionStr := dimStyle.Render(fmt.Sprintf(" • %s session", formatDuration(summary.Duration)))

	var stats string
	switch n := len(summary.Selected); n {
	case 0:
		stats = "No selection"
	case 1:
		stats = "Selected: " + truncate.StringWithTail(summary.Selected[0], maxSummaryValue, "…")
	default:
		last := truncate.StringWithTail(summary.Selected[n-1], maxSummaryValue, "…")
		stats = fmt.Sprintf("%d selections, last: %s", n, last)
	}
	line := textStyle.Render(stats)
	if summary.Failures > 0 {
		line += " " + errStyle.Render(fmt.Sprintf("(%d failed %s)", summary.Failures, plural(summary.Failures, "lookup", "lookups")))
	}

	_, _ = fmt.Fprintln(w, appStyle.Render("Autocomplete")+versionStr+sessionStr)
	_, _ = fmt.Fprintln(w, line)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
