// Package capability holds the default capability resolver: a static
// role-to-capability table. Swapping in a directory-backed resolver only
// requires re-binding the port.
package capability

import (
	"context"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/pkg/errs"
	"fleet-reservations/internal/usecase/commands"
)

var roleCapabilities = map[actor.Role][]actor.Capability{
	actor.RoleRequester: {
		actor.CapCreate, actor.CapCancel, actor.CapViewOwn,
	},
	actor.RoleDispatcher: {
		actor.CapAssignVehicle, actor.CapComplete, actor.CapViewOwn,
	},
	actor.RoleFleetManager: {
		actor.CapCreate, actor.CapApprove, actor.CapCancel,
		actor.CapAssignVehicle, actor.CapUpdateReason, actor.CapComplete,
		actor.CapViewOwn,
	},
	actor.RoleAdmin: {
		actor.CapCreate, actor.CapApprove, actor.CapCancel,
		actor.CapAssignVehicle, actor.CapUpdateReason, actor.CapComplete,
		actor.CapDelete, actor.CapViewOwn,
	},
}

type StaticResolver struct{}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

var _ commands.CapabilityResolver = (*StaticResolver)(nil)

func (r *StaticResolver) CapabilitiesOf(_ context.Context, a actor.Actor) (actor.Capabilities, error) {
	caps, ok := roleCapabilities[a.Role]
	if !ok {
		return nil, errs.Wrap(actor.ErrInvalidRole, "unknown role "+a.Role.String())
	}
	return actor.NewCapabilities(caps...), nil
}
