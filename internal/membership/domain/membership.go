package domain

import (
	"time"
)

// Membership links a user to an entity with a role. At most one exists per (user, entity).
type Membership struct {
	ID        string
	UserID    string
	EntityID  string
	Role      Role
	CreatedAt time.Time
}

type Role string

const (
	RoleOwner Role = "owner"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known membership role.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleUser
}

// IsOwner reports whether the membership grants owner privileges.
func (m *Membership) IsOwner() bool {
	return m != nil && m.Role == RoleOwner
}

// Member is a membership joined to the member's email for listing.
type Member struct {
	Membership
	UserEmail string
}
