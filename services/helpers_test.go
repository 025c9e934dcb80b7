package services

import (
	"io"
	"path/filepath"
	"sync"
	"testing"

	"littlelemon/configs"
	"littlelemon/entity"
	"littlelemon/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	groups  *repository.GroupRepository
	catalog *CatalogService
	cart    *CartService
	orders  *OrderService
	events  *recorder
}

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) OrderChanged(event string, o *entity.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.ConnectionDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedGroups(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	groups := repository.NewGroupRepository(db)
	cartRepo := repository.NewCartRepository(db)
	catalog := NewCatalogService(repository.NewMenuRepository(db))
	rec := &recorder{}
	return &fixture{
		db:      db,
		groups:  groups,
		catalog: catalog,
		cart:    NewCartService(db, cartRepo, catalog),
		orders: NewOrderService(db, repository.NewOrderRepository(db), cartRepo, users, groups,
			rec, quietLogger()),
		events: rec,
	}
}

func (f *fixture) user(t *testing.T, username string, roles ...entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x"}
	require.NoError(t, f.db.Create(u).Error)
	for _, r := range roles {
		require.NoError(t, f.groups.AddMember(r, u))
	}
	return u
}

func (f *fixture) menuItem(t *testing.T, title, price string) *entity.MenuItem {
	t.Helper()
	var cat entity.Category
	require.NoError(t, f.db.Where(entity.Category{Slug: "mains"}).
		Attrs(entity.Category{Title: "Mains"}).FirstOrCreate(&cat).Error)
	m := &entity.MenuItem{Title: title, Price: dec(price), CategoryID: cat.ID}
	require.NoError(t, f.db.Create(m).Error)
	return m
}

func (f *fixture) addToCart(t *testing.T, userID uint, m *entity.MenuItem, qty int) *entity.CartLine {
	t.Helper()
	line, err := f.cart.Add(userID, &AddToCartIn{MenuItemID: m.ID, Quantity: qty})
	require.NoError(t, err)
	return line
}

func (f *fixture) countOrders(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&n).Error)
	return n
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}
