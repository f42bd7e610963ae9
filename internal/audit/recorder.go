// Package audit records state changes and serves them back to the users allowed to see them.
package audit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	auditrepo "github.com/grezxune/ours-ledger/internal/audit/repository"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

// UserLookup returns a user by id, or nil when absent.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
}

// Exporter ships committed events to a secondary sink. Export errors never affect the caller.
type Exporter interface {
	Export(ctx context.Context, e *domain.Event) error
}

// EventRecorder is what mutating services depend on.
type EventRecorder interface {
	Record(ctx context.Context, in Input) (*domain.Event, error)
}

// Input describes one state change. EntityID is empty for platform-scoped changes.
type Input struct {
	ActorUserID string
	EntityID    string
	Action      domain.Action
	Target      string
	Metadata    domain.Metadata
}

// Recorder appends audit events in the caller's transaction.
type Recorder struct {
	users     UserLookup
	repo      auditrepo.Repository
	exporters []Exporter
	now       func() time.Time
	recorded  metric.Int64Counter
}

// NewRecorder returns a Recorder persisting to repo. Exporters run after the surrounding
// transaction commits.
func NewRecorder(users UserLookup, repo auditrepo.Repository, exporters ...Exporter) *Recorder {
	counter, err := otel.Meter("github.com/grezxune/ours-ledger/internal/audit").Int64Counter(
		"ledger.audit.events_recorded",
		metric.WithDescription("Audit events appended, by action"),
	)
	if err != nil {
		otel.Handle(err)
	}
	return &Recorder{
		users:     users,
		repo:      repo,
		exporters: exporters,
		now:       func() time.Time { return time.Now().UTC() },
		recorded:  counter,
	}
}

// Record resolves the actor's current email, appends the event and returns it. An append failure
// is returned so the surrounding mutation rolls back with it.
func (r *Recorder) Record(ctx context.Context, in Input) (*domain.Event, error) {
	if in.Action == "" {
		return nil, apperr.Validation("audit action is required")
	}
	actor, err := r.users.GetByID(ctx, in.ActorUserID)
	if err != nil {
		return nil, fmt.Errorf("audit: load actor: %w", err)
	}
	if actor == nil {
		log.Printf("audit: actor %s missing while recording %s", in.ActorUserID, in.Action)
		return nil, apperr.NotFound("actor user not found")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("audit: new id: %w", err)
	}
	e := &domain.Event{
		ID:          id.String(),
		EntityID:    in.EntityID,
		ActorUserID: actor.ID,
		ActorEmail:  actor.Email,
		Action:      in.Action,
		Target:      in.Target,
		Metadata:    in.Metadata.Clone(),
		CreatedAt:   r.now(),
	}
	if err := r.repo.Append(ctx, e); err != nil {
		return nil, fmt.Errorf("audit: append %s: %w", in.Action, err)
	}

	db.AfterCommit(ctx, func(ctx context.Context) { r.committed(ctx, e) })
	return e, nil
}

func (r *Recorder) committed(ctx context.Context, e *domain.Event) {
	if r.recorded != nil {
		r.recorded.Add(ctx, 1, metric.WithAttributes(attribute.String("action", string(e.Action))))
	}
	for _, exp := range r.exporters {
		if exp == nil {
			continue
		}
		if err := exp.Export(ctx, e); err != nil {
			log.Printf("audit: export %s failed: %v", e.ID, err)
		}
	}
}
