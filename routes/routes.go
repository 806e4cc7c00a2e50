package routes

import (
	"github.com/BillyRonico412/brestau-sub000/configs"
	"github.com/BillyRonico412/brestau-sub000/controllers"
	"github.com/BillyRonico412/brestau-sub000/middlewares"
	"github.com/BillyRonico412/brestau-sub000/repository"
	"github.com/BillyRonico412/brestau-sub000/services"
	"github.com/BillyRonico412/brestau-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, gateway services.PaymentGateway) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Kitchen feed
	kitchenHub := ws.NewKitchenHub()
	go kitchenHub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, gateway)
	fulfillSvc := services.NewFulfillmentService(db, orderRepo, kitchenHub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	kitchenCtrl := controllers.NewKitchenController(fulfillSvc)
	adminCtrl := controllers.NewAdminController(authSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Catalog (public, read-only)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/foods/:id", menuCtrl.FoodDetail)

	// Orders (any authenticated user)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Kitchen/floor (staff only)
	kitchen := r.Group("/kitchen", middlewares.AuthMiddleware("cooker", "server", "admin"))
	{
		kitchen.PATCH("/items/:id/status", kitchenCtrl.UpdateItemStatus)
	}
	floor := r.Group("/kitchen", middlewares.AuthMiddleware("server", "admin"))
	{
		floor.PATCH("/orders/:id/complete", kitchenCtrl.CompleteOrder)
	}

	// Live item feed for displays
	r.GET("/ws/kitchen",
		middlewares.WSAuthMiddleware(cfg.JWTSecret, "cooker", "server", "admin"),
		kitchenHub.HandleWebSocket)

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.POST("/staff", adminCtrl.CreateStaff)
	}
}
