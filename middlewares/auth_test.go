package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"littlelemon/entity"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleSet map[uint]entity.Role

func (r roleSet) HasRole(userID uint, role entity.Role) (bool, error) {
	return r[userID] == role, nil
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": utils.CurrentUserID(c), "staff": utils.IsStaff(c)})
	})
	r.GET("/x", handlers...)
	return r
}

func get(r *gin.Engine, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, id uint, staff bool, secret string, ttl time.Duration) string {
	t.Helper()
	s, err := utils.GenerateToken(id, staff, secret, ttl)
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	r := newEngine(AuthMiddleware("s3cret"))

	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", "Bearer "+token(t, 1, false, "other", time.Hour)).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", "Bearer "+token(t, 1, false, "s3cret", -time.Minute)).Code)

	w := get(r, "/x", "Bearer "+token(t, 4, true, "s3cret", time.Hour))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":4,"staff":true}`, w.Body.String())
}

func TestWSAuthMiddlewareQueryToken(t *testing.T) {
	r := newEngine(WSAuthMiddleware("s3cret"))

	assert.Equal(t, http.StatusUnauthorized, get(r, "/x", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/x?token="+token(t, 2, false, "s3cret", time.Hour), "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/x", "Bearer "+token(t, 2, false, "s3cret", time.Hour)).Code)
}

func TestRequireStaffAndRole(t *testing.T) {
	staff := newEngine(AuthMiddleware("k"), RequireStaff())
	assert.Equal(t, http.StatusForbidden, get(staff, "/x", "Bearer "+token(t, 1, false, "k", time.Hour)).Code)
	assert.Equal(t, http.StatusOK, get(staff, "/x", "Bearer "+token(t, 1, true, "k", time.Hour)).Code)

	manager := newEngine(AuthMiddleware("k"), RequireRole(roleSet{3: entity.RoleManager}, entity.RoleManager))
	assert.Equal(t, http.StatusForbidden, get(manager, "/x", "Bearer "+token(t, 1, true, "k", time.Hour)).Code)
	assert.Equal(t, http.StatusOK, get(manager, "/x", "Bearer "+token(t, 3, false, "k", time.Hour)).Code)
}

func TestRateLimiterKeys(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	r := newEngine(func(c *gin.Context) {
		if id := c.Query("as"); id == "1" {
			c.Set(utils.CtxUserID, uint(1))
		}
		c.Next()
	}, rl.Handler())

	assert.Equal(t, http.StatusOK, get(r, "/x?as=1", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/x?as=1", "").Code)
	// anonymous callers have their own bucket
	assert.Equal(t, http.StatusOK, get(r, "/x", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/x", "").Code)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := newEngine(RequestLogger(quiet()))

	w := get(r, "/x", "")
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "3f0c8a52-8b7e-4d43-9b55-5c1bce0c1f00")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "3f0c8a52-8b7e-4d43-9b55-5c1bce0c1f00", w.Header().Get("X-Request-ID"))
}
