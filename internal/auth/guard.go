package auth

import "github.com/google/uuid"

// Owned is satisfied by records that carry an owning user id.
type Owned interface {
	OwnerID() uuid.UUID
}

// CanMutate reports whether the identity may update or delete the resource.
// A nil identity, a nil resource, or a resource without an owner is never
// mutable. Existence is the caller's concern: a missing record must be
// surfaced as not found before the guard runs.
func CanMutate(identity *Identity, resource Owned) bool {
	if identity == nil || resource == nil {
		return false
	}

	owner := resource.OwnerID()
	if owner == uuid.Nil {
		return false
	}

	return owner == identity.UserID
}
