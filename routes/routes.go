package routes

import (
	"littlelemon/configs"
	"littlelemon/controllers"
	"littlelemon/entity"
	"littlelemon/middlewares"
	"littlelemon/pkg/metrics"
	"littlelemon/repository"
	"littlelemon/services"
	"littlelemon/ws"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds the wired services so callers (main, tests) can reach them.
type App struct {
	Orders *services.OrderService
	Hub    *ws.OrderHub
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log logrus.FieldLogger) *App {
	r.Use(middlewares.RequestLogger(log), metrics.GinMiddleware(), middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	hub := ws.NewOrderHub(groupRepo, log)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogSvc)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, groupRepo, hub, log)
	groupSvc := services.NewGroupService(groupRepo, userRepo, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerCtrl := controllers.NewGroupController(groupSvc, entity.RoleManager)
	crewCtrl := controllers.NewGroupController(groupSvc, entity.RoleDeliveryCrew)

	throttle := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler()
	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	staff := middlewares.RequireStaff()

	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth", throttle)
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	u := api.Group("", auth, throttle)

	// Catalog
	u.GET("/categories", menuCtrl.ListCategories)
	u.POST("/categories", staff, menuCtrl.CreateCategory)
	u.GET("/menu-items", menuCtrl.List)
	u.POST("/menu-items", staff, menuCtrl.Create)
	u.GET("/menu-items/:id", menuCtrl.Get)
	u.PUT("/menu-items/:id", staff, menuCtrl.Update)
	u.PATCH("/menu-items/:id", staff, menuCtrl.Update)
	u.DELETE("/menu-items/:id", staff, menuCtrl.Delete)

	// Cart
	u.GET("/cart/menu-items", cartCtrl.List)
	u.POST("/cart/menu-items", cartCtrl.Add)
	u.DELETE("/cart/menu-items", cartCtrl.Clear)

	// Orders
	u.GET("/orders", orderCtrl.List)
	u.POST("/orders", orderCtrl.Checkout)
	u.GET("/orders/:id", orderCtrl.Detail)
	u.PUT("/orders/:id", orderCtrl.Update)
	u.PATCH("/orders/:id", orderCtrl.Update)

	// Groups
	mg := u.Group("/groups/manager/users", staff)
	{
		mg.GET("", managerCtrl.List)
		mg.POST("", managerCtrl.Add)
		mg.DELETE("/:id", managerCtrl.Remove)
	}
	dc := u.Group("/groups/delivery-crew/users", middlewares.RequireRole(groupRepo, entity.RoleManager))
	{
		dc.GET("", crewCtrl.List)
		dc.POST("", crewCtrl.Add)
		dc.DELETE("/:id", crewCtrl.Remove)
	}

	// Order events
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	return &App{Orders: orderSvc, Hub: hub}
}
