package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := ac.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, u)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, u, err := ac.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": u})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	u, err := ac.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": u, "is_staff": u.IsStaff})
}
