package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;not null" json:"user"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"delivery_crew"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status string          `gorm:"index;not null;default:pending" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"total"`
	Date   time.Time       `gorm:"index;not null" json:"date"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"order_items"`
}

// MarshalJSON writes date as YYYY-MM-DD.
func (o Order) MarshalJSON() ([]byte, error) {
	type order Order
	return json.Marshal(struct {
		order
		Date string `json:"date"`
	}{order(o), o.Date.Format(time.DateOnly)})
}

func (o *Order) UnmarshalJSON(b []byte) error {
	type order Order
	aux := struct {
		*order
		Date string `json:"date"`
	}{order: (*order)(o)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		return nil
	}
	d, err := time.Parse(time.DateOnly, aux.Date)
	if err != nil {
		return err
	}
	o.Date = d
	return nil
}
