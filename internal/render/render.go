// Package render turns task lists and table rows into terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/metalagman/taskstack/internal/task"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	urgentStyle = cellStyle.Foreground(lipgloss.Color("9"))
)

// TaskLine formats one task the way the list command shows it.
func TaskLine(t task.Task) string {
	return fmt.Sprintf("[%d] %s - status: %s - priority: %s", t.ID, t.Title, t.Status, t.Priority)
}

// List renders every task on its own line.
func List(tasks []task.Task) string {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(TaskLine(t))
		b.WriteByte('\n')
	}
	return b.String()
}

// Box renders rows as a bordered table.
func Box(rows []task.Row) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells())
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(task.TableHeaders...).
		Rows(cells...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && rows[row].Urgent {
				return urgentStyle
			}
			return cellStyle
		})
	return t.String()
}

// Markdown builds a GitHub-flavoured markdown table of rows.
func Markdown(rows []task.Row) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(task.TableHeaders, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(task.TableHeaders)) + "\n")
	for _, r := range rows {
		cells := r.Cells()
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}

// Glamour renders the markdown table through glamour using the named style.
func Glamour(rows []task.Row, style string) (string, error) {
	if style == "" {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(rows))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// Table renders rows in the given format: "markdown" goes through glamour,
// anything else is drawn as a box.
func Table(rows []task.Row, format, style string) (string, error) {
	if format == "markdown" {
		return Glamour(rows, style)
	}
	return Box(rows), nil
}
