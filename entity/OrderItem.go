package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is the historical price record of one checked-out cart line.
// It is written once inside checkout and never updated.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`

	OrderID uint  `gorm:"uniqueIndex:idx_order_menuitem;not null" json:"order"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_menuitem;not null" json:"menuitem_id"`
	MenuItem   MenuItem `json:"menuitem"` // preload on detail

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unit_price"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price"`
}
