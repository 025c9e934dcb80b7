package controllers

import (
	"littlelemon/entity"
	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

// GroupController serves the user lists of one staff group.
type GroupController struct {
	Svc  *services.GroupService
	Role entity.Role
}

func NewGroupController(s *services.GroupService, role entity.Role) *GroupController {
	return &GroupController{Svc: s, Role: role}
}

// GET /api/groups/{manager,delivery-crew}/users
func (gc *GroupController) List(c *gin.Context) {
	users, err := gc.Svc.Members(gc.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// POST /api/groups/{manager,delivery-crew}/users
func (gc *GroupController) Add(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := gc.Svc.Add(gc.Role, req.Username)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "User " + u.Username + " added to " + string(gc.Role) + " group"})
}

// DELETE /api/groups/{manager,delivery-crew}/users/:id
func (gc *GroupController) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.NotFound(c, "user not found")
		return
	}
	u, err := gc.Svc.Remove(gc.Role, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User " + u.Username + " removed from " + string(gc.Role) + " group"})
}
