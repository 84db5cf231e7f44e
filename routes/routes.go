package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	cakeRepo := repository.NewCakeRepository(db)
	designRepo := repository.NewDesignRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	cakeService := services.NewCakeService(cakeRepo, designRepo)
	designService := services.NewDesignService(designRepo, cakeRepo, reviewRepo)
	customerService := services.NewCustomerService(customerRepo, reviewRepo)
	reviewService := services.NewReviewService(reviewRepo, customerRepo, designRepo)
	statsService := services.NewStatsService(cakeRepo, designRepo, customerRepo, reviewRepo)
	authService := services.NewAuthService(customerRepo, db, cfg.JWTSecret, cfg.JWTTTL)
	deleteGuard := services.NewDeleteGuard(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authService, customerService)
	cakeCtrl := controllers.NewCakeController(cakeService, deleteGuard)
	designCtrl := controllers.NewDesignController(designService, reviewService, deleteGuard, cfg.UploadDir)
	customerCtrl := controllers.NewCustomerController(customerService, deleteGuard)
	reviewCtrl := controllers.NewReviewController(reviewService)
	dashCtrl := controllers.NewDashboardController(statsService, designService)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
		a.POST("/admin/login", authCtrl.AdminLogin)
	}
	r.GET("/auth/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public storefront
	r.GET("/designs", designCtrl.List)
	r.GET("/designs/:id", designCtrl.Detail)
	r.GET("/top-designs", designCtrl.Top)
	r.GET("/cakes", cakeCtrl.List)
	r.GET("/cakes/search", cakeCtrl.Search)
	r.GET("/cakes/flavors", cakeCtrl.Flavors)
	r.GET("/cakes/sizes", cakeCtrl.Sizes)
	r.GET("/cakes/:id", cakeCtrl.Detail)
	r.GET("/calculator", cakeCtrl.Quote)

	// Customer (logged in)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/designs/:id/reviews", reviewCtrl.Submit)
		u.GET("/profile/reviews", reviewCtrl.ListForMe)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", dashCtrl.Stats)

		admin.GET("/cakes", cakeCtrl.ListAll)
		admin.POST("/cakes", cakeCtrl.Create)
		admin.PUT("/cakes/:id", cakeCtrl.Update)
		admin.DELETE("/cakes/:id", cakeCtrl.Delete)

		admin.POST("/designs", designCtrl.Create)
		admin.PUT("/designs/:id", designCtrl.Update)
		admin.DELETE("/designs/:id", designCtrl.Delete)

		admin.GET("/customers", customerCtrl.List)
		admin.GET("/customers/:id", customerCtrl.Detail)
		admin.POST("/customers", customerCtrl.Create)
		admin.PUT("/customers/:id", customerCtrl.Update)
		admin.DELETE("/customers/:id", customerCtrl.Delete)

		admin.GET("/reviews", reviewCtrl.List)
		admin.POST("/reviews", reviewCtrl.Create)
		admin.PUT("/reviews/:id", reviewCtrl.Update)
		admin.DELETE("/reviews/:id", reviewCtrl.Delete)
		admin.PATCH("/reviews/:id/hide", reviewCtrl.ToggleHide)
	}
}
