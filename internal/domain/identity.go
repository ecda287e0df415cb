package domain

import "github.com/google/uuid"

// Identity is a named customer. Instances are shared and read-only: obtain
// them from an identity cache rather than constructing them directly.
type Identity struct {
	id   uuid.UUID
	name string
}

// NewIdentity is meant for identity caches; everyone else should resolve by name.
func NewIdentity(id uuid.UUID, name string) *Identity {
	return &Identity{
		id:   id,
		name: name,
	}
}

func (i *Identity) ID() uuid.UUID {
	return i.id
}

func (i *Identity) Name() string {
	return i.name
}
