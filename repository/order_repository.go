package repository

import (
	"time"

	"littlelemon/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// OrderScope restricts which orders a query can see. Zero value sees all.
type OrderScope struct {
	UserID         uint
	DeliveryCrewID uint
}

func (s OrderScope) apply(q *gorm.DB) *gorm.DB {
	if s.UserID != 0 {
		q = q.Where("orders.user_id = ?", s.UserID)
	}
	if s.DeliveryCrewID != 0 {
		q = q.Where("orders.delivery_crew_id = ?", s.DeliveryCrewID)
	}
	return q
}

type OrderFilter struct {
	Status  string
	Date    *time.Time // UTC midnight of the day
	Page    int
	PerPage int
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Omit(clause.Associations).Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Omit(clause.Associations).Create(oi).Error
}

// GetOrder loads the order with its items through db, which may be a transaction.
func (r *OrderRepository) GetOrder(db *gorm.DB, orderID uint, scope OrderScope) (*entity.Order, error) {
	var o entity.Order
	q := scope.apply(db.Model(&entity.Order{}))
	if err := q.Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id ASC")
	}).Preload("OrderItems.MenuItem").
		First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrders(scope OrderScope, f OrderFilter) ([]entity.Order, int64, error) {
	q := scope.apply(r.DB.Model(&entity.Order{}))
	if f.Status != "" {
		q = q.Where("orders.status = ?", f.Status)
	}
	if f.Date != nil {
		q = q.Where("orders.date >= ? AND orders.date < ?", *f.Date, f.Date.AddDate(0, 0, 1))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, perPage := normalizePage(f.Page, f.PerPage)
	var out []entity.Order
	err := q.Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id ASC")
	}).Preload("OrderItems.MenuItem").
		Order("orders.id ASC").
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&out).Error
	return out, total, err
}

// UpdateOrderFields writes only the mutable columns of an order.
func (r *OrderRepository) UpdateOrderFields(tx *gorm.DB, o *entity.Order) error {
	return tx.Model(&entity.Order{}).Where("id = ?", o.ID).
		Select("status", "delivery_crew_id", "updated_at").
		Updates(map[string]any{
			"status":           o.Status,
			"delivery_crew_id": o.DeliveryCrewID,
			"updated_at":       time.Now(),
		}).Error
}
