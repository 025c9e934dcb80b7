package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart/menu-items
func (h *CartController) List(c *gin.Context) {
	lines, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines})
}

// POST /api/cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /api/cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
