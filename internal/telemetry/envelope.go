// Package telemetry ships committed audit events to secondary sinks (Kafka, OTel logs, Loki).
// The Postgres audit table stays the source of truth; every sink here is best-effort.
package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
)

// Exporter matches audit.Exporter without importing the audit service package.
type Exporter interface {
	Export(ctx context.Context, e *domain.Event) error
}

// Envelope is the JSON form of an audit event written to Kafka and pushed to Loki.
type Envelope struct {
	ID          string            `json:"id"`
	EntityID    string            `json:"entityId,omitempty"`
	ActorUserID string            `json:"actorUserId"`
	ActorEmail  string            `json:"actorEmail"`
	Action      string            `json:"action"`
	Label       string            `json:"label"`
	Target      string            `json:"target,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// NewEnvelope copies e into its exported form.
func NewEnvelope(e *domain.Event) *Envelope {
	return &Envelope{
		ID:          e.ID,
		EntityID:    e.EntityID,
		ActorUserID: e.ActorUserID,
		ActorEmail:  e.ActorEmail,
		Action:      string(e.Action),
		Label:       domain.ActionLabel(e.Action),
		Target:      e.Target,
		Metadata:    e.Metadata.Clone(),
		CreatedAt:   e.CreatedAt.UTC(),
	}
}

// Marshal returns the envelope as JSON.
func (v *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(v)
}

// ParseEnvelope decodes a JSON envelope.
func ParseEnvelope(raw []byte) (*Envelope, error) {
	var v Envelope
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Scope is the entity id, or "platform" for events outside any entity.
func (v *Envelope) Scope() string {
	if v.EntityID == "" {
		return "platform"
	}
	return v.EntityID
}
