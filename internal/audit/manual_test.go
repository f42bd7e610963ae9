package audit

import (
	"context"
	"testing"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	membershipdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockMembershipGetter is keyed "user:entity".
type mockMembershipGetter map[string]*membershipdomain.Membership

func (m mockMembershipGetter) GetByUserAndEntity(ctx context.Context, userID, entityID string) (*membershipdomain.Membership, error) {
	return m[userID+":"+entityID], nil
}

func newManual() (*ManualRecorder, *mockEventRepo) {
	repo := &mockEventRepo{}
	users := mockUsers{"alice": {ID: "alice", Email: "alice@example.com", PlatformRole: userdomain.PlatformRoleUser}}
	getter := mockMembershipGetter{"alice:house": member("alice", "house")}
	return NewManualRecorder(inlineTx{}, getter, NewRecorder(users, repo)), repo
}

func TestManualRecord(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		wantErr  func(error) bool
		platform bool
	}{
		{name: "entity member", in: Input{EntityID: "house", Action: "budget.reviewed", Target: "budget-1"}},
		{name: "platform scoped", in: Input{Action: "support.note", Target: "ticket-7"}, platform: true},
		{name: "non-member entity", in: Input{EntityID: "office", Action: "budget.reviewed"}, wantErr: apperr.IsForbidden},
		{name: "blank action", in: Input{EntityID: "house", Action: "  "}, wantErr: apperr.IsValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, repo := newManual()
			e, err := m.Record(context.Background(), "alice", tt.in)
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Fatalf("err = %v", err)
				}
				if len(repo.events) != 0 {
					t.Errorf("appended %d events, want 0", len(repo.events))
				}
				return
			}
			if err != nil {
				t.Fatalf("Record: %v", err)
			}
			if e.ActorEmail != "alice@example.com" {
				t.Errorf("ActorEmail = %q, want %q", e.ActorEmail, "alice@example.com")
			}
			if e.PlatformScoped() != tt.platform {
				t.Errorf("PlatformScoped = %v, want %v", e.PlatformScoped(), tt.platform)
			}
		})
	}
}

func TestManualRecord_ActorIsCaller(t *testing.T) {
	m, _ := newManual()
	e, err := m.Record(context.Background(), "alice", Input{ActorUserID: "someone-else", Action: domain.Action("note.added")})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if e.ActorUserID != "alice" {
		t.Errorf("ActorUserID = %q, want %q", e.ActorUserID, "alice")
	}
}
