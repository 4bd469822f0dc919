// Package render formats insights for the terminal.
package render

import (
	"fmt"
	"strings"

	"wastewise/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table is a bordered text table
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders headers and rows with box-drawing borders.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle.Render(b.String())
	}

	row := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			b.WriteString(" " + style.Render(cell) + strings.Repeat(" ", pad) + " ")
			b.WriteString(dimStyle.Render("│"))
		}
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(line("╭", "┬", "╮") + "\n")
	if len(t.Headers) > 0 {
		b.WriteString(row(t.Headers, headerStyle) + "\n")
		b.WriteString(line("├", "┼", "┤") + "\n")
	}
	for _, r := range t.Rows {
		b.WriteString(row(r, valueStyle) + "\n")
	}
	b.WriteString(line("╰", "┴", "╯") + "\n")
	return b.String()
}

func trendStyle(trend models.Trend) lipgloss.Style {
	switch trend {
	case models.TrendIncreasing:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case models.TrendDecreasing:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	default:
		return lipgloss.NewStyle().Foreground(ColorBlue)
	}
}

func priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case models.PriorityMedium:
		return lipgloss.NewStyle().Foreground(ColorOrange)
	default:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	}
}

// RenderPrediction renders the four prediction figures as labeled lines.
func RenderPrediction(p models.Prediction) string {
	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("Prediction") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Tomorrow:  "), valueStyle.Render(fmt.Sprintf("%dg", p.TomorrowWaste)))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("This week: "), valueStyle.Render(fmt.Sprintf("%dg", p.WeeklyWaste)))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Trend:     "), trendStyle(p.WasteTrend).Render(string(p.WasteTrend)))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Efficiency:"), valueStyle.Render(p.EfficiencyLabel()+"%"))
	return b.String()
}

// RenderSuggestions renders suggestions as a table, priority colored.
func RenderSuggestions(suggestions []models.Suggestion) string {
	t := Table{
		Title:   "Suggestions",
		Headers: []string{"Priority", "Type", "Title", "Message"},
	}
	for _, s := range suggestions {
		t.Rows = append(t.Rows, []string{
			priorityStyle(s.Priority).Render(string(s.Priority)),
			string(s.Type),
			s.Title,
			s.Message,
		})
	}
	return RenderTable(t)
}

// RenderChat renders an assistant reply with its follow-up suggestions.
func RenderChat(reply models.ChatResponse) string {
	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("Assistant") + " " + dimStyle.Render("("+string(reply.Intent)+")") + "\n")
	b.WriteString("  " + valueStyle.Render(reply.Text) + "\n")
	if len(reply.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range reply.Suggestions {
			b.WriteString("  " + dimStyle.Render("•") + " " + s + "\n")
		}
	}
	return b.String()
}
