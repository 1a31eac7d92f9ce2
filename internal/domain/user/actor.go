package user

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

// Label is what audit columns record for the actor.
func (a Actor) Label() string {
	if a.Email != "" {
		return a.Email
	}
	return a.ID.String()
}
