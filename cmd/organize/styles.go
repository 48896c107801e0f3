package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/munim/organize-bitwarden-folders-ai/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// renderSummary builds the end-of-run report box.
func renderSummary(s engine.Summary, output string, elapsed time.Duration) string {
	body := titleStyle.Render("Categorization complete") + "\n\n" +
		fmt.Sprintf("  Items processed:   %d\n", s.Total) +
		fmt.Sprintf("  AI classified:     %d\n", s.Classified) +
		fmt.Sprintf("  Mapped folders:    %d\n", s.MappedFolder) +
		fmt.Sprintf("  Mapped domains:    %d\n", s.MappedDomain) +
		fmt.Sprintf("  Homelab:           %d\n", s.Homelab) +
		fmt.Sprintf("  Dead:              %d\n", s.Dead)

	if s.Uncategorized > 0 {
		body += warnStyle.Render(fmt.Sprintf("  Uncategorized:     %d", s.Uncategorized)) + "\n"
	}

	body += "\n" +
		subtleStyle.Render(fmt.Sprintf("  Written to %s in %s", output, elapsed.Round(time.Second)))

	return boxStyle.Render(body)
}
