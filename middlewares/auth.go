package middlewares

import (
	"strings"

	"littlelemon/entity"
	"littlelemon/pkg/resp"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and stores userId/staff in the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			return
		}
		authenticate(c, strings.TrimPrefix(h, "Bearer "), secret)
	}
}

func authenticate(c *gin.Context, tokenStr, secret string) {
	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		resp.Unauthorized(c, "invalid token")
		return
	}
	c.Set(utils.CtxUserID, claims.UserID)
	c.Set(utils.CtxStaff, claims.Staff)
	c.Next()
}

// RequireStaff allows staff (admin) users only. Use after AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsStaff(c) {
			resp.Forbidden(c, "admin access required")
			return
		}
		c.Next()
	}
}

// RequireRole allows members of role only. Use after AuthMiddleware.
func RequireRole(dir services.RoleDirectory, role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := dir.HasRole(utils.CurrentUserID(c), role)
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}
		if !ok {
			resp.Forbidden(c, "you must be in the "+string(role)+" group")
			return
		}
		c.Next()
	}
}
