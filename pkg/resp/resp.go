package resp

import (
	"errors"
	"net/http"

	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func TooManyRequests(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}

// Error maps service errors onto HTTP statuses. Unknown errors are 500 and
// their text is not sent to the client.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, services.ErrPermissionDenied):
		Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidUpdate),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrAmountOverflow),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrUsernameRequired):
		BadRequest(c, err.Error())
	default:
		ServerError(c, err)
	}
}
