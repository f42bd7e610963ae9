package audit

import (
	"context"
	"testing"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	membershipdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

func viewer(userID string, superAdmin bool, entities ...string) *Viewer {
	v := &Viewer{UserID: userID, IsSuperAdmin: superAdmin, VisibleEntityIDs: map[string]struct{}{}}
	for _, id := range entities {
		v.VisibleEntityIDs[id] = struct{}{}
	}
	return v
}

func TestCanView_EntityScopedRequiresMembership(t *testing.T) {
	e := &domain.Event{EntityID: "house", ActorUserID: "alice"}
	tests := []struct {
		name   string
		viewer *Viewer
		want   bool
	}{
		{"member", viewer("bob", false, "house"), true},
		{"actor no longer member", viewer("alice", false), false},
		{"super admin non-member", viewer("root", true), false},
		{"super admin member", viewer("root", true, "house"), true},
		{"member of other entity", viewer("carol", false, "office"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanView(e, tt.viewer); got != tt.want {
				t.Errorf("CanView = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanView_PlatformScoped(t *testing.T) {
	e := &domain.Event{ActorUserID: "alice", Action: domain.ActionStorageConfigUpdated}
	tests := []struct {
		name   string
		viewer *Viewer
		want   bool
	}{
		{"actor", viewer("alice", false), true},
		{"super admin", viewer("root", true), true},
		{"other user with memberships", viewer("bob", false, "house"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanView(e, tt.viewer); got != tt.want {
				t.Errorf("CanView = %v, want %v", got, tt.want)
			}
		})
	}
	if CanView(nil, viewer("alice", true)) || CanView(e, nil) {
		t.Error("nil event or viewer must not be visible")
	}
}

func TestLoadViewer(t *testing.T) {
	users := mockUsers{
		"root": {ID: "root", PlatformRole: userdomain.PlatformRoleSuperAdmin},
	}
	ms := mockMemberships{"root": {member("root", "house"), member("root", "office")}}

	v, err := LoadViewer(context.Background(), users, ms, "root")
	if err != nil {
		t.Fatalf("LoadViewer: %v", err)
	}
	if !v.IsSuperAdmin {
		t.Error("IsSuperAdmin = false, want true")
	}
	if len(v.VisibleEntityIDs) != 2 {
		t.Errorf("VisibleEntityIDs = %v, want house and office", v.VisibleEntityIDs)
	}

	_, err = LoadViewer(context.Background(), users, mockMemberships{}, "ghost")
	if !apperr.IsNotFound(err) {
		t.Errorf("missing user err = %v, want NotFound", err)
	}
}

func TestLoadViewer_NoMemberships(t *testing.T) {
	users := mockUsers{"bob": {ID: "bob", PlatformRole: userdomain.PlatformRoleUser}}
	v, err := LoadViewer(context.Background(), users, mockMemberships{"bob": []*membershipdomain.Membership{}}, "bob")
	if err != nil {
		t.Fatalf("LoadViewer: %v", err)
	}
	if v.IsSuperAdmin || len(v.EntityIDs()) != 0 {
		t.Errorf("viewer = %+v, want plain user with no entities", v)
	}
}
