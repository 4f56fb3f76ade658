package services

import (
	"errors"

	"github.com/SpideeCode/uberPharma/entity"
	"gorm.io/gorm"
)

// UpdateStatus applies one lifecycle transition. The actor must be an
// admin or the pharmacy user owning the order's pharmacy; the target
// must be a known status reachable from the current one. The update
// itself is a compare-and-swap on the current status, so a concurrent
// transition loses cleanly instead of overwriting.
func (s *OrderService) UpdateStatus(p entity.Principal, orderID uint, newStatus entity.OrderStatus) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if p.Role != entity.RoleAdmin {
		owned, err := s.PharmacyRepo.IsOwnedBy(order.PharmacyID, p.UserID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrForbidden
		}
	}

	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}
	if !order.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notification hook would go here; nothing async is emitted today.

	return s.Repo.GetOrderLoaded(order.ID)
}
