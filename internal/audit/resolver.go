package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	auditrepo "github.com/grezxune/ours-ledger/internal/audit/repository"
)

const maxConcurrentSnapshots = 8

// Resolver expands an event into snapshots of the records it references. Missing records yield
// tombstone snapshots; they never fail resolution.
type Resolver struct {
	records auditrepo.RecordStore
}

// NewResolver returns a Resolver reading through records.
func NewResolver(records auditrepo.RecordStore) *Resolver {
	return &Resolver{records: records}
}

type ref struct {
	table domain.Table
	id    string
}

// Resolve loads the event's target, related records and parent entity. When the action names a
// target table but the event's target is not a valid id, TargetType is set and Target is nil.
func (r *Resolver) Resolve(ctx context.Context, e *domain.Event) (*domain.Detail, error) {
	d := &domain.Detail{Event: e, Related: []*domain.Snapshot{}}

	var target *ref
	if tbl, ok := e.Action.TargetTable(); ok {
		d.TargetType = tbl.String()
		if validID(e.Target) {
			target = &ref{table: tbl, id: e.Target}
			snap, err := r.snapshot(ctx, *target)
			if err != nil {
				return nil, err
			}
			d.Target = snap
		}
	}

	refs := collectRefs(e.Metadata, d.Target, target)
	related := make([]*domain.Snapshot, len(refs))
	var entityData map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSnapshots)
	for i, rf := range refs {
		g.Go(func() error {
			snap, err := r.snapshot(gctx, rf)
			if err != nil {
				return err
			}
			related[i] = snap
			return nil
		})
	}
	if e.EntityID != "" && validID(e.EntityID) {
		g.Go(func() error {
			data, err := r.records.LoadRecord(gctx, domain.TableEntities, e.EntityID)
			if err != nil {
				return fmt.Errorf("resolve entity %s: %w", e.EntityID, err)
			}
			entityData = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.Related = related
	if entityData != nil {
		d.Entity = &domain.EntitySummary{
			ID:       e.EntityID,
			Name:     stringField(entityData, "name"),
			Type:     stringField(entityData, "type"),
			Currency: stringField(entityData, "currency"),
		}
	}
	return d, nil
}

func (r *Resolver) snapshot(ctx context.Context, rf ref) (*domain.Snapshot, error) {
	data, err := r.records.LoadRecord(ctx, rf.table, rf.id)
	if err != nil {
		return nil, fmt.Errorf("resolve %s %s: %w", rf.table, rf.id, err)
	}
	return &domain.Snapshot{Table: rf.table, ID: rf.id, Exists: data != nil, Data: data}, nil
}

// collectRefs gathers metadata references, then the target record's own foreign keys, keeping the
// first occurrence of each (table, id) and dropping the target itself.
func collectRefs(meta domain.Metadata, targetSnap *domain.Snapshot, target *ref) []ref {
	seen := map[ref]bool{}
	if target != nil {
		seen[*target] = true
	}
	var out []ref
	add := func(tbl domain.Table, id string) {
		if id == "" || !validID(id) {
			return
		}
		rf := ref{table: tbl, id: id}
		if seen[rf] {
			return
		}
		seen[rf] = true
		out = append(out, rf)
	}

	for _, mr := range domain.MetadataReferences {
		add(mr.Table, meta.Get(mr.Field))
	}
	if targetSnap != nil && targetSnap.Data != nil {
		for _, rr := range domain.RecordReferences {
			add(rr.Table, stringField(targetSnap.Data, rr.Field))
		}
	}
	return out
}

// validID reports whether id can address a record. Malformed ids are skipped, not looked up.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}
