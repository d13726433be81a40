package trello

// EntityType identifies which kind of Trello entity a link points at.
// Adding a new entity type means adding a constant here, a URL template in
// the request handler and a mapping function in summary.go.
type EntityType int

const (
	EntityBoard EntityType = iota
	EntityCard
)

func (t EntityType) String() string {
	switch t {
	case EntityBoard:
		return "board"
	case EntityCard:
		return "card"
	default:
		return "unknown"
	}
}

// Reference is one (type, id) pair extracted from a message.
type Reference struct {
	Type EntityType
	ID   string
}
