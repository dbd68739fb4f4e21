// Package actor models the acting user as seen by the reservation core: an
// opaque identity plus a resolved set of named capabilities. The core never
// interprets identity beyond ownership comparisons.
package actor

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleRequester    Role = "requester"
	RoleDispatcher   Role = "dispatcher"
	RoleFleetManager Role = "fleet_manager"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleRequester, RoleDispatcher, RoleFleetManager, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Capability is a named permission the acting user either holds or does not.
type Capability string

const (
	CapCreate        Capability = "create"
	CapApprove       Capability = "approve"
	CapCancel        Capability = "cancel"
	CapAssignVehicle Capability = "assign-vehicle"
	CapUpdateReason  Capability = "update-reason"
	CapComplete      Capability = "complete"
	CapDelete        Capability = "delete"
	CapViewOwn       Capability = "viewOwn"
)

type Capabilities map[Capability]bool

func NewCapabilities(caps ...Capability) Capabilities {
	set := make(Capabilities, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}

func (c Capabilities) Has(cap Capability) bool {
	return c[cap]
}

func (c Capabilities) HasAny(caps ...Capability) bool {
	for _, candidate := range caps {
		if c[candidate] {
			return true
		}
	}
	return false
}

// Actor is the authenticated principal an operation runs on behalf of.
type Actor struct {
	ID   uuid.UUID
	Role Role
}
