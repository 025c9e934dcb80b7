package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string          `gorm:"index;not null" json:"title"`
	Price       decimal.Decimal `gorm:"type:decimal(6,2);index;not null" json:"price"`
	Featured    bool            `gorm:"index;not null;default:false" json:"featured"`
	Description string          `json:"description"`
	Image       string          `json:"image"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"category"` // preload on list/detail
}
