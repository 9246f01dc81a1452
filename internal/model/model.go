package model

import "strings"

// Ticket is one issue as shown on the board. Values are immutable once
// built; a refresh replaces the whole set rather than mutating tickets
// in place.
type Ticket struct {
	Key      string
	Type     TicketType
	Summary  string
	Status   string
	Assignee string
}

type TicketType int

const (
	TypeUnknown TicketType = iota
	TypeStory
	TypeBug
	TypeTask
	TypeEpic
)

// ParseTicketType maps a tracker issue-type name to a TicketType.
// Unrecognized names map to TypeUnknown rather than failing.
func ParseTicketType(s string) TicketType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "story":
		return TypeStory
	case "bug":
		return TypeBug
	case "task":
		return TypeTask
	case "epic":
		return TypeEpic
	default:
		return TypeUnknown
	}
}

func (t TicketType) String() string {
	switch t {
	case TypeStory:
		return "Story"
	case TypeBug:
		return "Bug"
	case TypeTask:
		return "Task"
	case TypeEpic:
		return "Epic"
	default:
		return "Unknown"
	}
}

// Glyph returns the one-cell marker rendered in front of the ticket key.
// Unknown types get a neutral bullet.
func (t TicketType) Glyph() string {
	switch t {
	case TypeBug:
		return "🐛"
	case TypeStory:
		return "📖"
	case TypeTask:
		return "✓"
	case TypeEpic:
		return "🎯"
	default:
		return "•"
	}
}

// TicketDetail is the full view of a single ticket, fetched on demand
// for `kanban show`. Optional fields are empty when the tracker does
// not provide them.
type TicketDetail struct {
	Ticket

	Description string
	Reporter    string
	Priority    string
	Created     string
	Updated     string
	Labels      []string
	Comments    []Comment
}

type Comment struct {
	Author  string
	Created string
	Body    string
}
