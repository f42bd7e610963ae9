package domain

// Snapshot is the current state of a referenced record. Exists is false and Data nil when the
// record has been deleted since the event was written.
type Snapshot struct {
	Table  Table          `json:"table"`
	ID     string         `json:"id"`
	Exists bool           `json:"exists"`
	Data   map[string]any `json:"data"`
}

// EntitySummary is the parent entity of an entity-scoped event.
type EntitySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
}

// Detail is an event plus the records it points at. TargetType is empty when the action has no
// target table.
type Detail struct {
	Event      *Event
	TargetType string
	Target     *Snapshot
	Related    []*Snapshot
	Entity     *EntitySummary
}
