// Package components holds reusable lipgloss renderers for CLI output.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/devfile-wizard/internal/adapters/in/cli/ui/styles"
)

// TableColumn defines a table column. A zero Width leaves the column
// unbounded.
type TableColumn struct {
	Title string
	Width int
}

// RenderTable renders rows under columns with a rounded border. Cells wider
// than their column are truncated with an ellipsis.
func RenderTable(columns []TableColumn, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = truncateCell(col.Title, col.Width)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(row))
		for c, cell := range row {
			width := 0
			if c < len(columns) {
				width = columns[c].Width
			}
			cells[r][c] = truncateCell(cell, width)
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Theme.TableBorder).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := styles.Theme.TableCell
			if row == table.HeaderRow {
				style = styles.Theme.TableHeader
			}
			if col >= 0 && col < len(columns) && columns[col].Width > 0 {
				// Padding adds two cells on top of the content width.
				w := columns[col].Width + 2
				style = style.Width(w).MaxWidth(w)
			}
			return style
		}).
		String()
}

func truncateCell(value string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(value) <= maxWidth {
		return value
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	runes := []rune(value)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
