// Package parse turns raw fixed-width ticket listings (the tabular
// text some tracker CLIs emit) into structured tickets. Parsing is
// stateless and line-local: every line stands alone, and a line that
// doesn't look like a ticket is skipped rather than reported.
package parse

import (
	"strings"

	"kanban-cli/internal/model"
)

// Column is one field of the fixed-width scheme, identified by byte
// offsets into the line. End < 0 means "to end of line".
type Column struct {
	Name  string
	Start int
	End   int
}

// Scheme is the ordered offset table for one source format. The scheme
// is data, not code, so a different upstream format only needs a new
// table.
type Scheme struct {
	Columns []Column
}

// DefaultScheme matches the tracker CLI's tabular issue listing.
var DefaultScheme = Scheme{Columns: []Column{
	{Name: "type", Start: 0, End: 20},
	{Name: "key", Start: 20, End: 40},
	{Name: "assignee", Start: 40, End: 69},
	{Name: "priority", Start: 69, End: 89},
	{Name: "status", Start: 89, End: 108},
	{Name: "summary", Start: 108, End: -1},
}}

// typeTokens are the line-start markers that identify a ticket row.
// Header rows, separators and blank lines start with something else
// and are skipped. Matching is case-sensitive.
var typeTokens = []string{"Story", "Bug", "Task", "Epic"}

// minLength returns the shortest line the scheme can extract a full
// record from: every column except the open-ended last one must be
// present.
func (s Scheme) minLength() int {
	min := 0
	for _, c := range s.Columns {
		if c.End < 0 {
			if c.Start > min {
				min = c.Start
			}
			continue
		}
		if c.End > min {
			min = c.End
		}
	}
	return min
}

// field extracts and trims the named column from the line.
func (s Scheme) field(line, name string) string {
	for _, c := range s.Columns {
		if c.Name != name {
			continue
		}
		if c.Start >= len(line) {
			return ""
		}
		end := c.End
		if end < 0 || end > len(line) {
			end = len(line)
		}
		return strings.TrimSpace(line[c.Start:end])
	}
	return ""
}

// Line parses one raw line. The second return is false for non-ticket
// input: lines not starting with a recognized type token, or too short
// to hold every field, or yielding an empty key.
func Line(line string, scheme Scheme) (model.Ticket, bool) {
	recognized := false
	for _, tok := range typeTokens {
		if strings.HasPrefix(line, tok) {
			recognized = true
			break
		}
	}
	if !recognized {
		return model.Ticket{}, false
	}
	if len(line) < scheme.minLength() {
		return model.Ticket{}, false
	}

	key := scheme.field(line, "key")
	if key == "" {
		return model.Ticket{}, false
	}

	return model.Ticket{
		Key:      key,
		Type:     model.ParseTicketType(scheme.field(line, "type")),
		Summary:  scheme.field(line, "summary"),
		Status:   scheme.field(line, "status"),
		Assignee: scheme.field(line, "assignee"),
	}, true
}

// Lines parses a whole batch, dropping rejected lines. The second
// return is the number of lines dropped (for logging; rejects never
// surface on the board).
func Lines(raw string, scheme Scheme) ([]model.Ticket, int) {
	var tickets []model.Ticket
	dropped := 0
	for _, ln := range strings.Split(raw, "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		t, ok := Line(ln, scheme)
		if !ok {
			dropped++
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, dropped
}
