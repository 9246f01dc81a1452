package cli

import (
	"fmt"
	"io"

	"kanban-cli/internal/board"
	"kanban-cli/internal/format"
	"kanban-cli/internal/lanes"
	"kanban-cli/internal/model"
)

// ticketJSON is the once-mode JSON shape; the lane is included so
// scripts don't have to reimplement status categorization.
type ticketJSON struct {
	Key      string `json:"key"`
	Type     string `json:"type"`
	Summary  string `json:"summary"`
	Status   string `json:"status"`
	Assignee string `json:"assignee"`
	Lane     string `json:"lane"`
}

// printOnce writes a non-interactive snapshot of the board, grouped by
// lane. Meant for watch(1) and scripts.
func printOnce(w io.Writer, tickets []model.Ticket, asJSON bool) error {
	if asJSON {
		out := make([]ticketJSON, 0, len(tickets))
		for _, t := range tickets {
			out = append(out, ticketJSON{
				Key:      t.Key,
				Type:     t.Type.String(),
				Summary:  t.Summary,
				Status:   t.Status,
				Assignee: t.Assignee,
				Lane:     lanes.Categorize(t.Status).String(),
			})
		}
		return format.WriteJSON(w, out, true)
	}

	b := board.Build(tickets)
	if len(b.Columns) == 0 {
		_, err := fmt.Fprintln(w, "No tickets matched the query.")
		return err
	}
	for i, c := range b.Columns {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", c.Lane.Title(), len(c.Tickets))
		for _, t := range c.Tickets {
			fmt.Fprintf(w, "  %s %-12s %s\n", t.Type.Glyph(), t.Key, t.Summary)
		}
	}
	return nil
}
