package services

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/entity"
	"littlelemon/pkg/metrics"
	"littlelemon/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Order event names published after a successful commit.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
)

// OrderNotifier receives committed order changes.
type OrderNotifier interface {
	OrderChanged(event string, o *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Users    *repository.UserRepository
	Roles    RoleDirectory
	Notifier OrderNotifier
	Log      logrus.FieldLogger

	// Now is replaceable in tests.
	Now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	users *repository.UserRepository,
	roles RoleDirectory,
	notifier OrderNotifier,
	log logrus.FieldLogger,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, Users: users, Roles: roles,
		Notifier: notifier, Log: log, Now: time.Now,
	}
}

// Checkout turns the caller's cart into an order. Reading the cart, writing
// the order and its items, and emptying the cart are one transaction.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	var created *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListLines(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		prices := make([]decimal.Decimal, 0, len(lines))
		for _, l := range lines {
			prices = append(prices, l.Price)
		}

		total := OrderTotal(prices)
		if total.GreaterThan(MaxAmount) {
			return ErrAmountOverflow
		}

		now := s.Now().UTC()
		order := entity.Order{
			UserID: userID,
			Status: entity.OrderStatusPending,
			Total:  total,
			Date:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// snapshot prices verbatim from the cart
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if _, err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		created, err = s.Repo.GetOrder(tx, order.ID, repository.OrderScope{})
		return err
	})
	switch {
	case errors.Is(err, ErrEmptyCart):
		metrics.RecordCheckout("empty_cart")
		return nil, err
	case errors.Is(err, ErrAmountOverflow):
		metrics.RecordCheckout("overflow")
		return nil, err
	}
	if err != nil {
		metrics.RecordCheckout("error")
		s.Log.WithError(err).WithField("user_id", userID).Error("checkout rolled back")
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	metrics.RecordCheckout("ok")
	s.Log.WithFields(logrus.Fields{
		"user_id":  userID,
		"order_id": created.ID,
		"items":    len(created.OrderItems),
		"total":    created.Total.StringFixed(2),
	}).Info("order placed")
	s.notify(EventOrderCreated, created)
	return created, nil
}

func (s *OrderService) notify(event string, o *entity.Order) {
	if s.Notifier != nil {
		s.Notifier.OrderChanged(event, o)
	}
}
