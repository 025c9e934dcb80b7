package controllers

import (
	"strconv"

	"littlelemon/pkg/resp"
	"littlelemon/repository"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.CatalogService
}

func NewMenuController(s *services.CatalogService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /api/categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	items, err := ctl.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /api/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Svc.CreateCategory(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /api/menu-items?category=&featured=&search=&ordering=&page=&perpage=
func (ctl *MenuController) List(c *gin.Context) {
	f := repository.MenuFilter{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     queryInt(c, "page"),
		PerPage:  queryInt(c, "perpage"),
	}
	if v := c.Query("category"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "category must be an id")
			return
		}
		f.CategoryID = uint(id)
	}
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "featured must be a boolean")
			return
		}
		f.Featured = &b
	}

	page, err := ctl.Svc.ListMenuItems(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /api/menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	m, err := ctl.Svc.GetMenuItem(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /api/menu-items
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ctl.Svc.CreateMenuItem(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT|PATCH /api/menu-items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if c.Request.Method == "PUT" && (req.Title == nil || req.Price == nil || req.CategoryID == nil) {
		resp.BadRequest(c, "title, price and category_id are required")
		return
	}
	m, err := ctl.Svc.UpdateMenuItem(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	if err := ctl.Svc.DeleteMenuItem(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
