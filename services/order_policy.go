package services

import (
	"errors"
	"fmt"

	"littlelemon/entity"
	"littlelemon/pkg/metrics"
	"littlelemon/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderUpdate is the parsed body of an order update. Unknown holds the names
// of any other fields the client sent.
type OrderUpdate struct {
	Status         *string
	DeliveryCrewID *uint
	Unknown        []string
}

func (u OrderUpdate) onlyStatus() bool {
	return u.Status != nil && u.DeliveryCrewID == nil && len(u.Unknown) == 0
}

type OrderPage struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
}

// scopeFor maps a role to the orders it can see.
func scopeFor(role CallerRole, callerID uint) repository.OrderScope {
	switch role {
	case CallerManager:
		return repository.OrderScope{}
	case CallerDeliveryCrew:
		return repository.OrderScope{DeliveryCrewID: callerID}
	default:
		return repository.OrderScope{UserID: callerID}
	}
}

func (s *OrderService) VisibleOrders(callerID uint, f repository.OrderFilter) (*OrderPage, error) {
	role, err := ResolveCaller(s.Roles, callerID)
	if err != nil {
		return nil, err
	}
	items, total, err := s.Repo.ListOrders(scopeFor(role, callerID), f)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Items: items, Total: total}, nil
}

// GetVisibleOrder returns ErrNotFound for orders outside the caller's scope.
func (s *OrderService) GetVisibleOrder(callerID, orderID uint) (*entity.Order, error) {
	role, err := ResolveCaller(s.Roles, callerID)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.GetOrder(s.DB, orderID, scopeFor(role, callerID))
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

// UpdateOrder applies in under the caller's role:
// managers may set status and assign delivery crew, the assigned delivery
// crew member may set status only, everyone else is denied.
func (s *OrderService) UpdateOrder(orderID, callerID uint, in OrderUpdate) (*entity.Order, error) {
	role, err := ResolveCaller(s.Roles, callerID)
	if err != nil {
		return nil, err
	}

	// Resolved before the transaction: nil means leave delivery_crew as is.
	var assign *uint
	if role == CallerManager && in.DeliveryCrewID != nil && *in.DeliveryCrewID != 0 {
		if assign, err = s.eligibleCrew(*in.DeliveryCrewID); err != nil {
			s.recordUpdate(role, err)
			return nil, err
		}
	}

	var updated *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID, repository.OrderScope{})
		if err != nil {
			return notFound(err)
		}

		switch {
		case role == CallerManager:
			if assign != nil {
				o.DeliveryCrewID = assign
			}
			if in.Status != nil {
				o.Status = *in.Status
			}
		case role == CallerDeliveryCrew && o.DeliveryCrewID != nil && *o.DeliveryCrewID == callerID:
			if !in.onlyStatus() {
				return ErrInvalidUpdate
			}
			o.Status = *in.Status
		default:
			return ErrPermissionDenied
		}

		if err := s.Repo.UpdateOrderFields(tx, o); err != nil {
			return err
		}
		updated, err = s.Repo.GetOrder(tx, orderID, repository.OrderScope{})
		return err
	})
	s.recordUpdate(role, err)
	if err != nil {
		return nil, err
	}

	s.Log.WithFields(logrus.Fields{
		"order_id":      updated.ID,
		"caller_id":     callerID,
		"role":          role.String(),
		"status":        updated.Status,
		"delivery_crew": updated.DeliveryCrewID,
	}).Info("order updated")
	s.notify(EventOrderUpdated, updated)
	return updated, nil
}

// eligibleCrew returns the user id when it names a Delivery Crew member, nil
// when the user exists but is not crew, and ErrNotFound for unknown users.
func (s *OrderService) eligibleCrew(userID uint) (*uint, error) {
	u, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, notFound(err)
	}
	ok, err := s.Roles.HasRole(u.ID, entity.RoleDeliveryCrew)
	if err != nil {
		return nil, fmt.Errorf("lookup delivery crew role: %w", err)
	}
	if !ok {
		s.Log.WithField("user_id", u.ID).Info("ignoring delivery crew assignment of non-crew user")
		return nil, nil
	}
	id := u.ID
	return &id, nil
}

func (s *OrderService) recordUpdate(role CallerRole, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrPermissionDenied):
		result = "denied"
	case errors.Is(err, ErrInvalidUpdate):
		result = "invalid"
	case errors.Is(err, ErrNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.RecordOrderUpdate(role.String(), result)
}
