package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kanban-cli/internal/board"
	"kanban-cli/internal/layout"
	"kanban-cli/internal/model"
)

// Card shape: glyph+key line, summary line, one spacer line.
const cardHeight = 3

// renderTicketCard formats one ticket into a fixed-shape block exactly
// colW columns wide. Pure; safe to call from tests without a terminal.
func renderTicketCard(t model.Ticket, colW int) string {
	keyLine := truncateToWidth(t.Type.Glyph()+" "+t.Key, colW)
	// Reserve the card's horizontal padding when fitting the summary.
	summary := truncateToWidth(t.Summary, colW-2)

	key := lipgloss.NewStyle().Bold(true).Render(keyLine)
	return normalizePane(key+"\n"+summary, colW, cardHeight)
}

// emptyCard is the filler block for lanes shorter than the row count;
// the grid must stay rectangular.
func emptyCard(colW int) string {
	return normalizePane("", colW, cardHeight)
}

func renderLaneHeader(c board.Column, colW int) string {
	st := lipgloss.NewStyle().Bold(true).Foreground(laneColor(c.Lane))
	return normalizePane(st.Render(truncateToWidth(c.Lane.Title(), colW)), colW, 1)
}

// joinCells places fixed-shape cells side by side with a vertical
// separator glyph at every column boundary, both edges included.
func joinCells(cells []string, height int) string {
	sep := styleMuted().Foreground(colorBorder).Render("│")

	split := make([][]string, len(cells))
	for i, c := range cells {
		split[i] = strings.Split(c, "\n")
	}

	var b strings.Builder
	for ln := 0; ln < height; ln++ {
		b.WriteString(sep)
		for _, cell := range split {
			if ln < len(cell) {
				b.WriteString(cell[ln])
			}
			b.WriteString(sep)
		}
		if ln < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderGroup paints one horizontal band of lanes: a header row and a
// rectangular grid of ticket cards. Missing cells render as blank
// blocks of the same shape.
func renderGroup(cols []board.Column, colW int) string {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = renderLaneHeader(c, colW)
	}

	maxRows := 0
	for _, c := range cols {
		if len(c.Tickets) > maxRows {
			maxRows = len(c.Tickets)
		}
	}

	parts := []string{joinCells(headers, 1)}
	for row := 0; row < maxRows; row++ {
		cells := make([]string, len(cols))
		for i, c := range cols {
			if row < len(c.Tickets) {
				cells[i] = renderTicketCard(c.Tickets[row], colW)
			} else {
				cells[i] = emptyCard(colW)
			}
		}
		parts = append(parts, joinCells(cells, cardHeight))
	}
	return strings.Join(parts, "\n")
}

// chunkColumns splits the visible lanes, in fixed lane order, into
// groups of at most size. With an odd lane count in a two-column
// arrangement the remainder becomes a final one-lane group.
func chunkColumns(cols []board.Column, size int) [][]board.Column {
	if size < 1 {
		size = 1
	}
	var groups [][]board.Column
	for len(cols) > size {
		groups = append(groups, cols[:size])
		cols = cols[size:]
	}
	if len(cols) > 0 {
		groups = append(groups, cols)
	}
	return groups
}

// renderBoard lays the whole board out for the given terminal size.
// Layout selection is width-driven; height only clips.
func renderBoard(b board.Board, width, height int) string {
	if len(b.Columns) == 0 {
		return normalizePane(styleMuted().Render("No tickets matched the query."), width, height)
	}

	lay := layout.Select(width, len(b.Columns))
	if lay.ColWidth <= 0 {
		return normalizePane("", width, height)
	}

	groups := chunkColumns(b.Columns, lay.Columns)
	rendered := make([]string, len(groups))
	for i, g := range groups {
		rendered[i] = renderGroup(g, lay.ColWidth)
	}
	return normalizePane(strings.Join(rendered, "\n\n"), width, height)
}
