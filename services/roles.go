package services

import (
	"fmt"

	"littlelemon/entity"
)

// RoleDirectory answers group membership questions.
type RoleDirectory interface {
	HasRole(userID uint, role entity.Role) (bool, error)
}

// CallerRole is the single effective role of a caller for order access.
type CallerRole int

const (
	CallerCustomer CallerRole = iota
	CallerDeliveryCrew
	CallerManager
)

func (r CallerRole) String() string {
	switch r {
	case CallerManager:
		return "manager"
	case CallerDeliveryCrew:
		return "delivery_crew"
	default:
		return "customer"
	}
}

// ResolveCaller applies the precedence Manager > Delivery Crew > customer.
func ResolveCaller(dir RoleDirectory, userID uint) (CallerRole, error) {
	ok, err := dir.HasRole(userID, entity.RoleManager)
	if err != nil {
		return CallerCustomer, fmt.Errorf("lookup manager role: %w", err)
	}
	if ok {
		return CallerManager, nil
	}
	ok, err = dir.HasRole(userID, entity.RoleDeliveryCrew)
	if err != nil {
		return CallerCustomer, fmt.Errorf("lookup delivery crew role: %w", err)
	}
	if ok {
		return CallerDeliveryCrew, nil
	}
	return CallerCustomer, nil
}
