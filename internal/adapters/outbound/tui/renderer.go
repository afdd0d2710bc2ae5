package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/routeguard/routeguard/internal/application"
	"github.com/routeguard/routeguard/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	skipCol = lipgloss.Color("#4B5563") // dark gray
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
	skipStyle     = lipgloss.NewStyle().Foreground(skipCol)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	addedStyle    = lipgloss.NewStyle().Foreground(success)
	removedStyle  = lipgloss.NewStyle().Foreground(danger)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a full run report: summary box, per-category counts,
// and every failed file with its reason.
func RenderReport(report *application.RunReport, mode domain.Mode) string {
	var b strings.Builder

	stats := report.Stats
	title := headerStyle.Render("routeguard")
	subtitle := dimStyle.Render(fmt.Sprintf("%s run · %d files", mode, stats.Total()))
	counts := fmt.Sprintf("%s  %s  %s  %s",
		passStyle.Render(fmt.Sprintf("%d transformed", stats.Success)),
		skipStyle.Render(fmt.Sprintf("%d skipped", stats.Skipped)),
		failStyle.Render(fmt.Sprintf("%d failed", stats.Failed)),
		warnStyle.Render(fmt.Sprintf("%d errors", stats.Errors)),
	)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + counts))
	b.WriteString("\n\n")

	if report.CommitHash != "" {
		b.WriteString("  " + dimStyle.Render("commit: "+report.CommitHash) + "\n")
	}
	if report.BackupDir != "" {
		b.WriteString("  " + dimStyle.Render("backup: "+report.BackupDir) + "\n")
	}

	renderCategoryCounts(&b, stats.ByCategory)
	renderFailures(&b, stats.Failures)

	return b.String()
}

func renderCategoryCounts(b *strings.Builder, byCategory map[domain.Category]int) {
	if len(byCategory) == 0 {
		return
	}

	b.WriteString("\n  " + titleStyle.Render("By category") + "\n")

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)

	for _, c := range categories {
		b.WriteString(fmt.Sprintf("    %-10s %s\n",
			c, dimStyle.Render(fmt.Sprintf("%d", byCategory[domain.Category(c)]))))
	}
}

func renderFailures(b *strings.Builder, failures []domain.Failure) {
	if len(failures) == 0 {
		return
	}

	b.WriteString("\n  " + failStyle.Render("Failures") + "\n")
	for _, f := range failures {
		b.WriteString(fmt.Sprintf("    %s %s\n      %s\n",
			failStyle.Render("●"),
			fileStyle.Render(f.Path),
			dimStyle.Render(f.Reason)))
	}
}

// RenderDiff colorizes a diff produced by domain.RenderDiff: removals red,
// additions green, markers dimmed.
func RenderDiff(diff string) string {
	var b strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "- ") || line == "--- ORIGINAL":
			b.WriteString(removedStyle.Render(line))
		case strings.HasPrefix(line, "+ ") || line == "+++ TRANSFORMED":
			b.WriteString(addedStyle.Render(line))
		case strings.HasPrefix(line, "────"):
			b.WriteString(separatorLine)
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderInspection renders the classify command's single-file view.
func RenderInspection(ins application.Inspection) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(ins.Path) + "\n")
	b.WriteString(fmt.Sprintf("    pattern:  %s\n", string(ins.Pattern)))
	b.WriteString(fmt.Sprintf("    category: %s\n", string(ins.Category)))
	b.WriteString(fmt.Sprintf("    wrapper:  %s\n", dimStyle.Render(ins.Wrapper)))
	return b.String()
}
