// Package lanes maps free-text workflow statuses onto the four fixed
// board lanes. The mapping is total: every status string lands in
// exactly one lane, with Todo as the explicit fallback so a ticket can
// never drop off the board just because its status is unrecognized.
package lanes

import "strings"

type Lane int

const (
	Todo Lane = iota
	InProgress
	Review
	Done
)

// Order is the fixed left-to-right lane order on the board.
var Order = [4]Lane{Todo, InProgress, Review, Done}

// Title returns the canonical column header for the lane.
func (l Lane) Title() string {
	switch l {
	case InProgress:
		return "IN PROGRESS"
	case Review:
		return "REVIEW"
	case Done:
		return "DONE"
	default:
		return "TO DO"
	}
}

func (l Lane) String() string {
	switch l {
	case InProgress:
		return "in-progress"
	case Review:
		return "review"
	case Done:
		return "done"
	default:
		return "todo"
	}
}

// Membership lists are exact, case-sensitive status spellings. A status
// outside every list falls back to Todo.
var laneStatuses = map[string]Lane{
	"To Do":                 Todo,
	"Open":                  Todo,
	"Ready for Development": Todo,
	"Backlog":               Todo,

	"In Progress": InProgress,
	"Development": InProgress,

	"Peer Review":    Review,
	"Code Review":    Review,
	"QA Review":      Review,
	"Product Review": Review,
	"Testing":        Review,

	"Done":     Done,
	"Shipped":  Done,
	"Closed":   Done,
	"Resolved": Done,
}

// Categorize returns the lane for a workflow status.
func Categorize(status string) Lane {
	if l, ok := laneStatuses[strings.TrimSpace(status)]; ok {
		return l
	}
	return Todo
}
