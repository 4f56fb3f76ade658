package routes

import (
	"github.com/SpideeCode/uberPharma/configs"
	"github.com/SpideeCode/uberPharma/controllers"
	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/middlewares"
	"github.com/SpideeCode/uberPharma/repository"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", middlewares.MetricsHandler())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	pharmacyRepo := repository.NewPharmacyRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, productRepo, pharmacyRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, pharmacyRepo)
	pharmacySvc := services.NewPharmacyService(pharmacyRepo)
	productSvc := services.NewProductService(productRepo, pharmacyRepo)
	userSvc := services.NewUserService(userRepo)
	dashSvc := services.NewDashboardService(orderRepo, pharmacyRepo, productRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	paymentCtrl := controllers.NewPaymentController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	pharmacyCtrl := controllers.NewPharmacyController(pharmacySvc, cartSvc, dashSvc)
	productCtrl := controllers.NewProductController(productSvc)
	adminCtrl := controllers.NewAdminController(userSvc, dashSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog listing is public; the detail page is client tier.
	r.GET("/pharmacies", pharmacyCtrl.List)

	// Client tier
	client := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleClient))
	{
		client.GET("/pharmacies/:id", pharmacyCtrl.Detail)

		client.GET("/cart", cartCtrl.List)
		client.POST("/cart/add", cartCtrl.Add)
		client.POST("/cart/remove", cartCtrl.Remove)
		client.POST("/cart/clear", cartCtrl.Clear)

		client.GET("/payment", paymentCtrl.Preview)
		client.POST("/payment", paymentCtrl.Checkout)

		client.GET("/orders", orderCtrl.List)
		client.GET("/orders/:id", orderCtrl.Detail)
		client.GET("/orders/:id/confirmation", orderCtrl.Confirmation)
	}

	// Pharmacy tier
	pharmacy := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RolePharmacy))
	{
		pharmacy.POST("/pharmacies", pharmacyCtrl.Create)
		pharmacy.PUT("/pharmacies/:id", pharmacyCtrl.Update)
		pharmacy.DELETE("/pharmacies/:id", pharmacyCtrl.Delete)
		pharmacy.GET("/my/pharmacies", pharmacyCtrl.Mine)

		pharmacy.POST("/products", productCtrl.Create)
		pharmacy.PUT("/products/:id", productCtrl.Update)
		pharmacy.DELETE("/products/:id", productCtrl.Delete)

		pharmacy.GET("/pharmacy/dashboard", pharmacyCtrl.DashboardView)

		pharmacy.PATCH("/api/orders/:id/status", orderCtrl.UpdateStatus)
	}

	// Admin tier
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.DashboardView)
		admin.GET("/users", adminCtrl.ListUsers)
		admin.POST("/users", adminCtrl.CreateUser)
		admin.POST("/users/:id/role", adminCtrl.UpdateUserRole)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
	}
}
