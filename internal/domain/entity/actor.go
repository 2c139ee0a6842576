package entity

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Role is a capability granted by the access token.
type Role string

const (
	RoleAdmin    Role = "admin"    // approves farms and manages the catalog
	RoleFarmer   Role = "farmer"   // owns farms, plants crops and fulfils farm orders
	RoleConsumer Role = "consumer" // places and collects orders
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleFarmer || r == RoleConsumer
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ParseRoles keeps the known roles among raw token claims, once each.
func ParseRoles(raw []string) Roles {
	roles := make(Roles, 0, len(raw))
	for _, s := range raw {
		role := Role(strings.ToLower(strings.TrimSpace(s)))
		if role.IsValid() && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}

// Actor is the authenticated caller of an operation.
// It is passed explicitly into every use case that needs a role or ownership check.
type Actor struct {
	UserID uuid.UUID
	Roles  Roles
}

// NewActor builds an Actor from a user ID and raw role claims.
func NewActor(userID uuid.UUID, roles []string) *Actor {
	return &Actor{
		UserID: userID,
		Roles:  ParseRoles(roles),
	}
}

// HasRole reports whether the actor holds the given role. A nil actor holds no roles.
func (a *Actor) HasRole(role Role) bool {
	if a == nil {
		return false
	}

	return a.Roles.Contains(role)
}

func (a *Actor) IsAdmin() bool {
	return a.HasRole(RoleAdmin)
}

// Owns reports whether the actor is the given owner.
func (a *Actor) Owns(ownerID uuid.UUID) bool {
	return a != nil && a.UserID != uuid.Nil && a.UserID == ownerID
}
