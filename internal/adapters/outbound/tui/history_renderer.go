package tui

import (
	"fmt"
	"strings"

	"github.com/issuecheck/issuecheck/internal/domain"
)

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := shortHash(e.CommitHash)
		if hash == "" {
			hash = "·······"
		}

		rateStyle := passStyle
		if e.Failed > 0 {
			rateStyle = failStyle
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(e.Timestamp.Format("2006-01-02")),
			faintStyle.Render(hash),
			rateStyle.Render(fmt.Sprintf("%3d%%", e.PassRate)),
			dimStyle.Render(fmt.Sprintf("%d passed, %d failed", e.Passed, e.Failed)),
		)

		if i > 0 {
			diff := e.PassRate - entries[i-1].PassRate
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
