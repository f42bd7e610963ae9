package service

import (
	"context"
	"testing"

	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/document/domain"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockDocuments struct {
	created []*domain.Document
}

func (m *mockDocuments) Create(ctx context.Context, d *domain.Document) error {
	m.created = append(m.created, d)
	return nil
}

func (m *mockDocuments) ListByEntity(ctx context.Context, entityID string) ([]*domain.Document, error) {
	return m.created, nil
}

// mockMemberships is keyed "user:entity".
type mockMemberships map[string]*mdomain.Membership

func (m mockMemberships) GetByUserAndEntity(ctx context.Context, userID, entityID string) (*mdomain.Membership, error) {
	return m[userID+":"+entityID], nil
}

type mockUsers map[string]*userdomain.User

func (m mockUsers) RequireUserByID(ctx context.Context, id string) (*userdomain.User, error) {
	if u := m[id]; u != nil {
		return u, nil
	}
	return nil, apperr.NotFound("user not found")
}

type mockRecorder struct {
	inputs []audit.Input
}

func (m *mockRecorder) Record(ctx context.Context, in audit.Input) (*auditdomain.Event, error) {
	m.inputs = append(m.inputs, in)
	return &auditdomain.Event{Action: in.Action}, nil
}

func newService() (*DocumentService, *mockDocuments, *mockRecorder) {
	docs := &mockDocuments{}
	rec := &mockRecorder{}
	memberships := mockMemberships{"member-1:entity-1": {UserID: "member-1", EntityID: "entity-1", Role: mdomain.RoleUser}}
	users := mockUsers{"member-1": {ID: "member-1", Email: "member@example.com"}}
	return NewDocumentService(inlineTx{}, docs, memberships, users, rec), docs, rec
}

func receipt() domain.Upload {
	return domain.Upload{FileName: "receipt.pdf", MimeType: "application/pdf", SizeBytes: 2048, StorageKey: "entity-1/receipt.pdf"}
}

func TestRecordUpload(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		upload     domain.Upload
		wantErr    func(error) bool
		wantSource string
	}{
		{name: "member", userID: "member-1", upload: receipt()},
		{name: "linked to transaction", userID: "member-1", upload: func() domain.Upload {
			u := receipt()
			u.SourceTransactionID = "tx-9"
			return u
		}(), wantSource: "tx-9"},
		{name: "non-member", userID: "stranger", upload: receipt(), wantErr: apperr.IsForbidden},
		{name: "missing key", userID: "member-1", upload: domain.Upload{FileName: "a", MimeType: "b"}, wantErr: apperr.IsValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, docs, rec := newService()
			d, err := svc.RecordUpload(context.Background(), tt.userID, "entity-1", tt.upload)
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Fatalf("err = %v", err)
				}
				if len(docs.created) != 0 || len(rec.inputs) != 0 {
					t.Error("nothing should be written on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("RecordUpload: %v", err)
			}
			if d.UploadedByEmail != "member@example.com" {
				t.Errorf("UploadedByEmail = %q", d.UploadedByEmail)
			}
			meta := rec.inputs[0].Metadata
			if meta.Get("documentId") != d.ID || meta.Get("sizeBytes") != "2048" {
				t.Errorf("metadata = %v", meta)
			}
			if got := meta.Get("sourceTransactionId"); got != tt.wantSource {
				t.Errorf("sourceTransactionId = %q, want %q", got, tt.wantSource)
			}
		})
	}
}

func TestList_NonMemberForbidden(t *testing.T) {
	svc, _, _ := newService()
	if _, err := svc.List(context.Background(), "stranger", "entity-1"); !apperr.IsForbidden(err) {
		t.Fatalf("err = %v, want Forbidden", err)
	}
}
