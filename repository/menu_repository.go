package repository

import (
	"littlelemon/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// MenuFilter narrows the menu listing. Zero values mean "no filter".
type MenuFilter struct {
	CategoryID uint
	Featured   *bool
	Search     string
	Ordering   string
	Page       int
	PerPage    int
}

var menuOrderings = map[string]string{
	"price":  "menu_items.price ASC, menu_items.id ASC",
	"-price": "menu_items.price DESC, menu_items.id ASC",
	"title":  "menu_items.title ASC, menu_items.id ASC",
	"-title": "menu_items.title DESC, menu_items.id ASC",
}

func (r *MenuRepository) ListMenuItems(f MenuFilter) ([]entity.MenuItem, int64, error) {
	q := r.DB.Model(&entity.MenuItem{})
	if f.CategoryID != 0 {
		q = q.Where("menu_items.category_id = ?", f.CategoryID)
	}
	if f.Featured != nil {
		q = q.Where("menu_items.featured = ?", *f.Featured)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Joins("JOIN categories c ON c.id = menu_items.category_id").
			Where("menu_items.title LIKE ? OR c.title LIKE ?", like, like)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := menuOrderings[f.Ordering]
	if !ok {
		order = "menu_items.id ASC"
	}
	page, perPage := normalizePage(f.Page, f.PerPage)

	var items []entity.MenuItem
	err := q.Preload("Category").
		Order(order).
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) SaveMenuItem(m *entity.MenuItem) error {
	return r.DB.Omit("Category").Save(m).Error
}

func (r *MenuRepository) DeleteMenuItem(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) CategoryExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *MenuRepository) CountCategoriesBySlug(slug string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Category{}).Where("slug = ?", slug).Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func normalizePage(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 50
	}
	if perPage > 200 {
		perPage = 200
	}
	return page, perPage
}
