package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one pending line of a user's cart. Rows are hard-deleted, so
// there is no DeletedAt column to collide with the (user, menu item) index.
type CartLine struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_menuitem;not null" json:"user"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_menuitem;not null" json:"menuitem_id"`
	MenuItem   MenuItem `json:"menuitem"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unit_price"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price"`
}

func (CartLine) TableName() string { return "carts" }
