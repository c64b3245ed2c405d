package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type ownedRecord struct {
	owner uuid.UUID
}

func (r ownedRecord) OwnerID() uuid.UUID {
	return r.owner
}

func TestCanMutate(t *testing.T) {
	owner := uuid.MustParse("b3c7ae26-27b9-4be2-9e41-08d1b5ad54a1")
	other := uuid.MustParse("6f9cfd51-8aae-4af6-bd91-14e701ca6037")

	testCases := []struct {
		name     string
		identity *Identity
		resource Owned
		want     bool
	}{
		{
			name:     "owner may mutate",
			identity: &Identity{UserID: owner, Username: "timtes"},
			resource: ownedRecord{owner: owner},
			want:     true,
		},
		{
			name:     "different user may not mutate",
			identity: &Identity{UserID: other, Username: "root"},
			resource: ownedRecord{owner: owner},
			want:     false,
		},
		{
			name:     "nil identity",
			identity: nil,
			resource: ownedRecord{owner: owner},
			want:     false,
		},
		{
			name:     "missing resource",
			identity: &Identity{UserID: owner, Username: "timtes"},
			resource: nil,
			want:     false,
		},
		{
			name:     "resource without an owner",
			identity: &Identity{UserID: owner, Username: "timtes"},
			resource: ownedRecord{},
			want:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanMutate(tc.identity, tc.resource))
		})
	}
}
