package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/issuecheck/issuecheck/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fieldStyle    = lipgloss.NewStyle().Bold(true).Foreground(warning)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// Options control optional sections of the rendered report.
type Options struct {
	// Dump appends a structural dump of each failing actual issue.
	Dump bool
}

// RenderRunReport renders a RunReport as a styled TUI string.
func RenderRunReport(report *domain.RunReport, opts Options) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("issuecheck")
	rateStyle := passStyle
	if report.Failed > 0 {
		rateStyle = failStyle
	}
	summary := rateStyle.Bold(true).Render(fmt.Sprintf("%d / %d cases passed", report.Passed, len(report.Results)))
	rate := dimStyle.Render(fmt.Sprintf("%d%% pass rate", report.PassRate))
	b.WriteString(boxStyle.Render(title + "\n\n" + summary + "\n" + rate))
	b.WriteString("\n\n")

	if len(report.Files) == 0 {
		b.WriteString("  " + warnStyle.Render("no case files found") + "\n")
		return b.String()
	}

	// ── Per file ──
	byFile := make(map[string][]domain.CaseResult)
	for _, res := range report.Results {
		byFile[res.File] = append(byFile[res.File], res)
	}
	for _, file := range report.Files {
		b.WriteString("  " + titleStyle.Render(file) + "\n")
		results := byFile[file]
		if len(results) == 0 {
			b.WriteString("    " + dimStyle.Render("(no cases)") + "\n")
		}
		for _, res := range results {
			b.WriteString(renderCaseLine(res))
		}
		b.WriteString("\n")
	}

	// ── Failures ──
	failures := report.Failures()
	if len(failures) > 0 {
		b.WriteString("  " + separatorLine + "\n")
		for _, f := range failures {
			b.WriteString(RenderFailure(f, opts))
		}
	}

	// ── Footer ──
	if report.CommitHash != "" {
		b.WriteString("\n  " + dimStyle.Render("commit "+shortHash(report.CommitHash)) + "\n")
	}

	return b.String()
}

func renderCaseLine(res domain.CaseResult) string {
	if res.Passed {
		return fmt.Sprintf("    %s %s\n", passStyle.Render("✓"), res.Name)
	}
	line := fmt.Sprintf("    %s %s", failStyle.Render("✗"), res.Name)
	if res.Field != "" {
		line += "  " + fileStyle.Render(res.Field)
	}
	return line + "\n"
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
