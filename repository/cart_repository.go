package repository

import (
	"errors"

	"littlelemon/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListLines reads through db so checkout can pass its transaction.
func (r *CartRepository) ListLines(db *gorm.DB, userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := db.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

func (r *CartRepository) GetLine(db *gorm.DB, userID, menuItemID uint) (*entity.CartLine, error) {
	var line entity.CartLine
	err := db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Preload("MenuItem.Category").
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// UpsertLine replaces quantity and prices of an existing (user, menu item)
// line, or inserts a new one.
func (r *CartRepository) UpsertLine(tx *gorm.DB, row *entity.CartLine) error {
	var exist entity.CartLine
	err := tx.Where("user_id = ? AND menu_item_id = ?", row.UserID, row.MenuItemID).
		First(&exist).Error
	if err == nil {
		return tx.Model(&exist).Updates(map[string]any{
			"quantity":   row.Quantity,
			"unit_price": row.UnitPrice,
			"price":      row.Price,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Omit("User", "MenuItem").Create(row).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&entity.CartLine{})
	return res.RowsAffected, res.Error
}
