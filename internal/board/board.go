// Package board groups tickets into lane columns. A Board is a
// derived view, rebuilt wholesale on every refresh; nothing in it is
// updated incrementally.
package board

import (
	"kanban-cli/internal/lanes"
	"kanban-cli/internal/model"
)

// Column is one visible lane with its tickets in arrival order.
type Column struct {
	Lane    lanes.Lane
	Tickets []model.Ticket
}

// Board is the ordered list of non-empty lanes. Lane order follows
// lanes.Order regardless of which lanes survive.
type Board struct {
	Columns []Column
}

// Build partitions tickets into lanes. The partition is stable:
// tickets in the same lane keep the relative order they arrived in.
// Empty lanes are left out.
func Build(tickets []model.Ticket) Board {
	byLane := map[lanes.Lane][]model.Ticket{}
	for _, t := range tickets {
		l := lanes.Categorize(t.Status)
		byLane[l] = append(byLane[l], t)
	}

	var b Board
	for _, l := range lanes.Order {
		if ts := byLane[l]; len(ts) > 0 {
			b.Columns = append(b.Columns, Column{Lane: l, Tickets: ts})
		}
	}
	return b
}

// MaxRows is the ticket count of the fullest visible lane.
func (b Board) MaxRows() int {
	max := 0
	for _, c := range b.Columns {
		if len(c.Tickets) > max {
			max = len(c.Tickets)
		}
	}
	return max
}
