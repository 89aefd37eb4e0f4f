package services

import (
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/sirupsen/logrus"
)

// Principal is the already-verified actor handed in by the auth
// boundary. The services trust it as-is.
type Principal struct {
	ID    uint
	Role  entity.Role
	Email string
}

// Guard is the single ownership check every restaurant-scoped mutation
// goes through. For nested resources (food, category, ingredient) the
// ownerID argument is the owning restaurant's owner, not the row's own
// user column.
type Guard struct{}

func (Guard) Authorize(actor Principal, resourceOwnerID uint, resource string, resourceID uint) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	if actor.ID == resourceOwnerID {
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"actor_id":    actor.ID,
		"actor_role":  actor.Role,
		"resource":    resource,
		"resource_id": resourceID,
	}).Warn("access denied")
	return fmt.Errorf("%w: user %d may not modify %s %d",
		apperr.ErrAccessDenied, actor.ID, resource, resourceID)
}
