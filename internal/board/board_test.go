package board

import (
	"testing"

	"kanban-cli/internal/lanes"
	"kanban-cli/internal/model"
)

func ticket(key, status string) model.Ticket {
	return model.Ticket{Key: key, Type: model.TypeTask, Status: status}
}

func TestBuild_StablePartition(t *testing.T) {
	b := Build([]model.Ticket{
		ticket("A-1", "To Do"),
		ticket("A-2", "In Progress"),
		ticket("A-3", "To Do"),
		ticket("A-4", "To Do"),
	})

	if len(b.Columns) != 2 {
		t.Fatalf("expected 2 visible lanes, got %d", len(b.Columns))
	}
	todo := b.Columns[0]
	if todo.Lane != lanes.Todo {
		t.Fatalf("expected first lane Todo, got %v", todo.Lane)
	}
	keys := []string{}
	for _, tk := range todo.Tickets {
		keys = append(keys, tk.Key)
	}
	want := []string{"A-1", "A-3", "A-4"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected lane order %v, got %v", want, keys)
		}
	}
}

func TestBuild_EmptyLanesExcluded(t *testing.T) {
	b := Build([]model.Ticket{ticket("A-1", "Done")})
	if len(b.Columns) != 1 {
		t.Fatalf("expected only the Done lane, got %d lanes", len(b.Columns))
	}
	if b.Columns[0].Lane != lanes.Done {
		t.Fatalf("expected Done lane, got %v", b.Columns[0].Lane)
	}
}

func TestBuild_LaneOrderPreserved(t *testing.T) {
	// Input arrives Done-first; the board must still follow fixed lane
	// order among the lanes that remain.
	b := Build([]model.Ticket{
		ticket("A-1", "Done"),
		ticket("A-2", "Peer Review"),
		ticket("A-3", "In Progress"),
	})
	want := []lanes.Lane{lanes.InProgress, lanes.Review, lanes.Done}
	if len(b.Columns) != len(want) {
		t.Fatalf("expected %d lanes, got %d", len(want), len(b.Columns))
	}
	for i, l := range want {
		if b.Columns[i].Lane != l {
			t.Fatalf("lane %d: expected %v, got %v", i, l, b.Columns[i].Lane)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	b := Build(nil)
	if len(b.Columns) != 0 {
		t.Fatalf("expected no lanes for empty input, got %d", len(b.Columns))
	}
	if b.MaxRows() != 0 {
		t.Fatalf("expected 0 rows, got %d", b.MaxRows())
	}
}

func TestMaxRows(t *testing.T) {
	b := Build([]model.Ticket{
		ticket("A-1", "To Do"),
		ticket("A-2", "To Do"),
		ticket("A-3", "Done"),
	})
	if got := b.MaxRows(); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
}
