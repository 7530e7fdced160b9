// Package render produces user-facing output from a statistics report.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/socialbook/internal/person"
	"github.com/dshills/socialbook/internal/stats"
)

// Format names accepted by Render.
const (
	FormatText     = "text"
	FormatMarkdown = "md"
	FormatJSON     = "json"
)

// Render dispatches on format. color only applies to text output.
func Render(r stats.Report, format string, color bool) (string, error) {
	switch format {
	case FormatText, "":
		return Styled(r, color) + "\n", nil
	case FormatMarkdown:
		return Markdown(r), nil
	case FormatJSON:
		return JSON(r)
	default:
		return "", fmt.Errorf("render: unknown format %q", format)
	}
}

// Text renders the report exactly as the statistics command reports it.
func Text(r stats.Report) string {
	return r.Message()
}

// Markdown renders the report as a Markdown table.
func Markdown(r stats.Report) string {
	var b strings.Builder
	b.WriteString("# SocialBook Statistics\n\n")
	b.WriteString("| Group | People |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| Total | %d |\n", r.Total)
	for _, p := range person.AllPriorities() {
		fmt.Fprintf(&b, "| %s priority | %d |\n", p, r.Count(p))
	}
	return b.String()
}

// JSON renders the report as indented JSON with a trailing newline.
func JSON(r stats.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render.JSON: %w", err)
	}
	return string(data) + "\n", nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	tierStyles  = map[person.Priority]lipgloss.Style{
		person.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		person.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		person.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

// Styled renders the text form with terminal colors. Without color it is
// identical to Text.
func Styled(r stats.Report, color bool) string {
	if !color {
		return Text(r)
	}
	lines := r.Lines()
	var b strings.Builder
	b.WriteString(headerStyle.Render("Here are all the statistics:"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(lines[0]))
	for i, p := range person.AllPriorities() {
		b.WriteString("\n")
		b.WriteString(tierStyles[p].Render(lines[i+1]))
	}
	return b.String()
}
