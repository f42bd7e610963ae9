package domain

import (
	"time"

	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRevoked  Status = "revoked"
	StatusExpired  Status = "expired"
)

// Invitation offers a role in an entity to an email address. At most one pending invitation
// exists per (entity, email).
type Invitation struct {
	ID              string
	EntityID        string
	Email           string
	Role            mdomain.Role
	Status          Status
	InvitedByUserID string
	CreatedAt       time.Time
}

// IsPending reports whether the invitation can still be accepted or revoked.
func (i *Invitation) IsPending() bool {
	return i != nil && i.Status == StatusPending
}
