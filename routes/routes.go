package routes

import (
	"dushanbe-eats/configs"
	"dushanbe-eats/controllers"
	"dushanbe-eats/middlewares"
	"dushanbe-eats/repository"
	"dushanbe-eats/services"
	"dushanbe-eats/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB        *gorm.DB
	Cfg       *configs.Config
	OrderFeed *ws.OrderFeed

	Users *repository.UserRepository

	Auth      *services.AuthService
	Catalog   *services.CatalogService
	Cart      *services.CartService
	Orders    *services.OrderService
	Payments  *services.PaymentService
	Favorites *services.FavoriteService
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authCtrl := controllers.NewAuthController(d.Auth)
	restCtrl := controllers.NewRestaurantController(d.Catalog, d.Users)
	menuCtrl := controllers.NewMenuController(d.Catalog, d.Users)
	cartCtrl := controllers.NewCartController(d.Cart)
	orderCtrl := controllers.NewOrderController(d.Orders, d.Users)
	payCtrl := controllers.NewPaymentController(d.Payments)
	favCtrl := controllers.NewFavoriteController(d.Favorites)
	adminCtrl := controllers.NewAdminController(d.Orders, d.Users)

	api := r.Group("/api")
	api.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Dushanbe Eats API", "version": "1.0"})
	})

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(d.Cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Catalog (public)
	api.GET("/cities", restCtrl.Cities)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.GET("/restaurants/:id/menu", menuCtrl.List)
	api.GET("/menu-categories/:restaurantId", menuCtrl.Categories)

	// Catalog management (owner/admin checks inside the service)
	api.POST("/restaurants", middlewares.AuthMiddleware(d.Cfg.JWTSecret), restCtrl.Create)
	api.PUT("/restaurants/:id", middlewares.AuthMiddleware(d.Cfg.JWTSecret), restCtrl.Update)

	menu := api.Group("/menu", middlewares.AuthMiddleware(d.Cfg.JWTSecret))
	{
		menu.POST("", menuCtrl.Create)
		menu.PUT("/:id", menuCtrl.Update)
		menu.DELETE("/:id", menuCtrl.Delete)
	}

	// Cart
	cart := api.Group("/cart", middlewares.AuthMiddleware(d.Cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.POST("/update", cartCtrl.Update)
		cart.DELETE("/clear", cartCtrl.Clear)
	}

	// Orders
	orders := api.Group("/orders", middlewares.AuthMiddleware(d.Cfg.JWTSecret))
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/status", orderCtrl.UpdateStatus)
	}

	// Favorites
	fav := api.Group("/favorites", middlewares.AuthMiddleware(d.Cfg.JWTSecret))
	{
		fav.GET("", favCtrl.List)
		fav.POST("/:restaurantId", favCtrl.Add)
		fav.DELETE("/:restaurantId", favCtrl.Remove)
		fav.GET("/check/:restaurantId", favCtrl.Check)
	}

	// Payments
	pay := api.Group("/payments", middlewares.AuthMiddleware(d.Cfg.JWTSecret))
	{
		pay.POST("/create-checkout", payCtrl.CreateCheckout)
		pay.GET("/status/:sessionId", payCtrl.Status)
	}
	api.POST("/webhook/payments", payCtrl.Webhook)

	// Back-office (admin sees all, owner sees own restaurant)
	admin := api.Group("/admin", middlewares.AuthMiddleware(d.Cfg.JWTSecret, "admin", "owner"))
	{
		admin.GET("/orders", adminCtrl.Orders)
		admin.GET("/analytics", adminCtrl.Analytics)
	}

	// Live order feed for operator dashboards
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(d.Cfg.JWTSecret), d.OrderFeed.HandleWebSocket)
}
