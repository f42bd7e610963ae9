package audit

import (
	"context"
	"errors"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	auditrepo "github.com/grezxune/ours-ledger/internal/audit/repository"
	membershipdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

type mockUsers map[string]*userdomain.User

func (m mockUsers) GetByID(ctx context.Context, id string) (*userdomain.User, error) {
	return m[id], nil
}

// mockMemberships is keyed by user id.
type mockMemberships map[string][]*membershipdomain.Membership

func (m mockMemberships) ListByUser(ctx context.Context, userID string) ([]*membershipdomain.Membership, error) {
	return m[userID], nil
}

func member(userID, entityID string) *membershipdomain.Membership {
	return &membershipdomain.Membership{UserID: userID, EntityID: entityID, Role: membershipdomain.RoleUser}
}

// mockEventRepo ignores the scope so the service's own filtering is what tests observe.
type mockEventRepo struct {
	events    []*domain.Event
	appendErr error
	lastLimit int
}

func (m *mockEventRepo) Append(ctx context.Context, e *domain.Event) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	e.Seq = int64(len(m.events) + 1)
	m.events = append(m.events, e)
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	for _, e := range m.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockEventRepo) ListVisible(ctx context.Context, scope auditrepo.Scope, limit int) ([]*domain.Event, error) {
	m.lastLimit = limit
	out := make([]*domain.Event, len(m.events))
	copy(out, m.events)
	return out, nil
}

// mockRecords is keyed by table then id.
type mockRecords struct {
	rows map[domain.Table]map[string]map[string]any
	err  error
}

func newMockRecords() *mockRecords {
	return &mockRecords{rows: map[domain.Table]map[string]map[string]any{}}
}

func (m *mockRecords) put(tbl domain.Table, id string, data map[string]any) {
	if m.rows[tbl] == nil {
		m.rows[tbl] = map[string]map[string]any{}
	}
	m.rows[tbl][id] = data
}

func (m *mockRecords) LoadRecord(ctx context.Context, tbl domain.Table, id string) (map[string]any, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows[tbl][id], nil
}

type mockExporter struct {
	exported []*domain.Event
	err      error
}

func (m *mockExporter) Export(ctx context.Context, e *domain.Event) error {
	m.exported = append(m.exported, e)
	return m.err
}

var errBoom = errors.New("boom")
