package services

import (
	"fmt"
	"strings"

	"littlelemon/entity"
	"littlelemon/repository"

	"github.com/shopspring/decimal"
)

type CatalogService struct {
	Repo *repository.MenuRepository
}

func NewCatalogService(repo *repository.MenuRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

type CategoryIn struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
}

// MenuItemIn is used for create (all fields) and patch (nil = keep).
type MenuItemIn struct {
	Title       *string          `json:"title"`
	Price       *decimal.Decimal `json:"price"`
	Featured    *bool            `json:"featured"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	CategoryID  *uint            `json:"category_id"`
}

type MenuItemPage struct {
	Items []entity.MenuItem `json:"items"`
	Total int64             `json:"total"`
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *CatalogService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	c := entity.Category{Title: strings.TrimSpace(in.Title), Slug: strings.TrimSpace(in.Slug)}
	if c.Title == "" || c.Slug == "" {
		return nil, fmt.Errorf("%w: title and slug are required", ErrInvalidInput)
	}
	n, err := s.Repo.CountCategoriesBySlug(c.Slug)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: slug already exists", ErrInvalidInput)
	}
	if err := s.Repo.CreateCategory(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CatalogService) ListMenuItems(f repository.MenuFilter) (*MenuItemPage, error) {
	items, total, err := s.Repo.ListMenuItems(f)
	if err != nil {
		return nil, err
	}
	return &MenuItemPage{Items: items, Total: total}, nil
}

// GetMenuItem is the catalog lookup the cart prices against.
func (s *CatalogService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetMenuItem(id)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

func (s *CatalogService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Title == nil || in.Price == nil || in.CategoryID == nil {
		return nil, fmt.Errorf("%w: title, price and category_id are required", ErrInvalidInput)
	}
	m := entity.MenuItem{}
	if err := s.apply(&m, in); err != nil {
		return nil, err
	}
	if err := s.Repo.CreateMenuItem(&m); err != nil {
		return nil, err
	}
	return s.GetMenuItem(m.ID)
}

// UpdateMenuItem applies the non-nil fields of in. A full PUT is a patch
// carrying every field.
func (s *CatalogService) UpdateMenuItem(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(m, in); err != nil {
		return nil, err
	}
	if err := s.Repo.SaveMenuItem(m); err != nil {
		return nil, err
	}
	return s.GetMenuItem(id)
}

func (s *CatalogService) DeleteMenuItem(id uint) error {
	n, err := s.Repo.DeleteMenuItem(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) apply(m *entity.MenuItem, in *MenuItemIn) error {
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		m.Title = t
	}
	if in.Price != nil {
		if !in.Price.IsPositive() || in.Price.GreaterThan(MaxAmount) || !in.Price.Equal(in.Price.Truncate(2)) {
			return fmt.Errorf("%w: price must be between 0.01 and 9999.99 with at most 2 decimals", ErrInvalidInput)
		}
		m.Price = *in.Price
	}
	if in.Featured != nil {
		m.Featured = *in.Featured
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Image != nil {
		m.Image = *in.Image
	}
	if in.CategoryID != nil {
		ok, err := s.Repo.CategoryExists(*in.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: category %d", ErrNotFound, *in.CategoryID)
		}
		m.CategoryID = *in.CategoryID
		m.Category = entity.Category{}
	}
	return nil
}
