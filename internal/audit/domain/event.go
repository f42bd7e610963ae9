package domain

import "time"

// Event is one immutable audit record. EntityID is empty for platform-scoped events.
// ActorEmail is captured when the event is written and never re-derived from the users table.
type Event struct {
	ID          string
	Seq         int64
	EntityID    string
	ActorUserID string
	ActorEmail  string
	Action      Action
	Target      string
	Metadata    Metadata
	CreatedAt   time.Time
}

// PlatformScoped reports whether the event belongs to no entity.
func (e *Event) PlatformScoped() bool {
	return e.EntityID == ""
}

// Newer reports whether e sorts before other in newest-first order. Seq breaks ties between
// events stamped with the same instant.
func (e *Event) Newer(other *Event) bool {
	if !e.CreatedAt.Equal(other.CreatedAt) {
		return e.CreatedAt.After(other.CreatedAt)
	}
	return e.Seq > other.Seq
}
