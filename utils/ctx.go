package utils

import "github.com/gin-gonic/gin"

const (
	CtxUserID    = "userId"
	CtxStaff     = "staff"
	CtxRequestID = "requestId"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserID)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func IsStaff(c *gin.Context) bool {
	return c.GetBool(CtxStaff)
}

func RequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}
