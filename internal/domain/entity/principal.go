package entity

import "github.com/google/uuid"

// Principal is the authenticated requester identity attached to every
// engine call: user ID plus role, nothing else. Capability decisions are
// computed from it by the authorizer, never by the engine itself.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}
