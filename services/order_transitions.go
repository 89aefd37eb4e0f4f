package services

import (
	"fmt"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/campo22/food-delivery-app/pkg/apperr"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UpdateStatus advances an order one step along the forward chain.
// Only the owning restaurant's owner (or an admin) may call it, and
// the persisted flip is guarded by a compare-and-swap on the current
// status so a racing update cannot skip a step.
func (s *OrderService) UpdateStatus(actor Principal, orderID uint, newStatus string) (*OrderView, error) {
	status := entity.OrderStatus(newStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", apperr.ErrOperationNotAllowed, newStatus)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByID(tx, orderID)
		if err != nil {
			return err
		}
		if err := s.Guard.Authorize(actor, o.Restaurant.OwnerID, "order", o.ID); err != nil {
			return err
		}
		if !o.Status.CanAdvanceTo(status) {
			return fmt.Errorf("%w: cannot move order %d from %s to %s",
				apperr.ErrOperationNotAllowed, o.ID, o.Status, status)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: order %d status changed concurrently", apperr.ErrConflict, o.ID)
		}

		logrus.WithFields(logrus.Fields{
			"order_id": o.ID,
			"from":     o.Status,
			"to":       status,
			"actor_id": actor.ID,
		}).Info("order status updated")
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err := s.Repo.FindByID(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	return mapOrderView(o), nil
}

// Cancel is customer-initiated and only valid while the order is still
// PENDING.
func (s *OrderService) Cancel(actor Principal, orderID uint) (*OrderView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByID(tx, orderID)
		if err != nil {
			return err
		}
		if o.CustomerID != actor.ID {
			return fmt.Errorf("%w: user %d is not the customer of order %d",
				apperr.ErrAccessDenied, actor.ID, o.ID)
		}
		if o.Status != entity.StatusPending {
			return fmt.Errorf("%w: order %d is %s and can no longer be cancelled",
				apperr.ErrOperationNotAllowed, o.ID, o.Status)
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.StatusPending, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: order %d status changed concurrently", apperr.ErrConflict, o.ID)
		}

		logrus.WithFields(logrus.Fields{
			"order_id": o.ID,
			"actor_id": actor.ID,
		}).Info("order cancelled")
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err := s.Repo.FindByID(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	return mapOrderView(o), nil
}
