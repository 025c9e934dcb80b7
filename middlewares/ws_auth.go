package middlewares

import (
	"strings"

	"littlelemon/pkg/resp"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware accepts the token from ?token= (browsers cannot set
// headers on a websocket handshake) or the Authorization header.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			return
		}
		authenticate(c, tokenStr, secret)
	}
}
