//go:build unit || e2e

package builder

import (
	"loyalty-engine/internal/domain/user"

	"github.com/google/uuid"
)

type ActorBuilder struct {
	ID    uuid.UUID
	Email string
	Role  user.Role
}

func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Role:  user.RoleAdmin,
	}
}

func (a *ActorBuilder) With(mutate func(*ActorBuilder)) *ActorBuilder {
	mutate(a)
	return a
}

func (a *ActorBuilder) WithID(id uuid.UUID) *ActorBuilder {
	a.ID = id
	return a
}

func (a *ActorBuilder) WithRole(role user.Role) *ActorBuilder {
	a.Role = role
	return a
}

func (a *ActorBuilder) WithEmail(email string) *ActorBuilder {
	a.Email = email
	return a
}

func (a *ActorBuilder) Build() user.Actor {
	return user.Actor{ID: a.ID, Email: a.Email, Role: a.Role}
}

// Shorthands for the four roles.
func Admin() user.Actor {
	return NewActorBuilder().Build()
}

func Manager() user.Actor {
	return NewActorBuilder().WithRole(user.RoleManager).WithEmail("manager@example.com").Build()
}

func Employee() user.Actor {
	return NewActorBuilder().WithRole(user.RoleEmployee).WithEmail("employee@example.com").Build()
}

func Client() user.Actor {
	return NewActorBuilder().WithRole(user.RoleClient).WithEmail("client@example.com").Build()
}
