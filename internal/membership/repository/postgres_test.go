package repository

import (
	"context"
	"testing"
)

func TestGetByUserAndEntity_MalformedIDsMatchNothing(t *testing.T) {
	// No connection: malformed ids must not reach the database.
	repo := NewPostgresRepository(nil)
	const valid = "6f1c2d3e-4b5a-4c7d-8e9f-0a1b2c3d4e5f"
	tests := []struct {
		name     string
		userID   string
		entityID string
	}{
		{"entity not a uuid", valid, "house"},
		{"user not a uuid", "user-1", valid},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := repo.GetByUserAndEntity(context.Background(), tt.userID, tt.entityID)
			if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if m != nil {
				t.Errorf("membership = %+v, want nil", m)
			}
		})
	}
}
