package services

import (
	"errors"

	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Catalog  *CatalogService
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catalog *CatalogService) *CartService {
	return &CartService{DB: db, CartRepo: cr, Catalog: catalog}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuitem_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// Add prices the line from the current menu item and replaces any existing
// line for the same menu item.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartLine, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	m, err := s.Catalog.GetMenuItem(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	price, err := LinePrice(m.Price, in.Quantity)
	if err != nil {
		return nil, err
	}

	row := &entity.CartLine{
		UserID: userID, MenuItemID: m.ID, Quantity: in.Quantity, UnitPrice: m.Price, Price: price,
	}
	var out *entity.CartLine
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.UpsertLine(tx, row); err != nil {
			return err
		}
		line, err := s.CartRepo.GetLine(tx, userID, m.ID)
		if err != nil {
			return err
		}
		out = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CartService) List(userID uint) ([]entity.CartLine, error) {
	return s.CartRepo.ListLines(s.DB, userID)
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.CartRepo.ClearCart(tx, userID)
		return err
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
