package entity

import "github.com/google/uuid"

// Actor is the resolved identity attached to every core operation. It is
// authenticated upstream; the core trusts it and only checks
// role-appropriateness, never the credential itself.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.Role == role
}
