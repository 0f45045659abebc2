package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"menucraft-backend/config"
	"menucraft-backend/controllers"
	"menucraft-backend/services"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

func SetupRouter(st store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.Static("/uploads", cfg.UploadsDir)

	// Controllers
	analyticsSvc := services.NewAnalyticsService(st, cfg.EventCap, cfg.EventTrimTo)
	checkoutSvc := services.NewCheckoutService(cfg.StripeSecretKey, cfg.BaseURL)

	authCtrl := controllers.NewAuthController(st)
	menuCtrl := controllers.NewMenuController(st)
	categoryCtrl := controllers.NewCategoryController(st)
	itemCtrl := controllers.NewItemController(st)
	publicCtrl := controllers.NewPublicController(st)
	analyticsCtrl := controllers.NewAnalyticsController(st, analyticsSvc)
	qrCtrl := controllers.NewQRController(st, cfg.BaseURL)
	specialsCtrl := controllers.NewSpecialsController(st)
	uploadCtrl := controllers.NewUploadController(cfg.UploadsDir)
	checkoutCtrl := controllers.NewCheckoutController(st, checkoutSvc, cfg.StripePublishableKey, cfg.BaseURL)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authCtrl.Signup)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/logout", authCtrl.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authCtrl.Me)
		auth.PUT("/profile", authCtrl.UpdateProfile)
	}

	// Public read path and tracking beacon (unauthenticated)
	public := api.Group("/public")
	{
		public.GET("/menu/:slug", publicCtrl.Menu)
	}
	api.POST("/analytics/track", analyticsCtrl.Track)
	api.GET("/config", checkoutCtrl.Config)

	// Owner-scoped routes
	owner := api.Group("")
	owner.Use(utils.AuthMiddleware())
	{
		menus := owner.Group("/menus")
		{
			menus.GET("", menuCtrl.List)
			menus.POST("", menuCtrl.Create)
			menus.PUT("/:id", menuCtrl.Update)
			menus.DELETE("/:id", menuCtrl.Delete)
			menus.PUT("/:id/languages", menuCtrl.UpdateLanguages)
			menus.PUT("/:id/order-config", menuCtrl.UpdateOrderConfig)
			menus.PUT("/:id/reorder-categories", menuCtrl.ReorderCategories)
			menus.GET("/:id/categories", categoryCtrl.ListByMenu)
			menus.POST("/:id/categories", categoryCtrl.Create)
			menus.GET("/:id/qr", qrCtrl.Code)
			menus.GET("/:id/qr-card", qrCtrl.Card)
			menus.GET("/:id/specials", specialsCtrl.Get)
			menus.PUT("/:id/specials", specialsCtrl.Update)
		}

		categories := owner.Group("/categories")
		{
			categories.PUT("/:id", categoryCtrl.Update)
			categories.DELETE("/:id", categoryCtrl.Delete)
			categories.POST("/:id/items", itemCtrl.Create)
			categories.PUT("/:id/reorder-items", categoryCtrl.ReorderItems)
		}

		items := owner.Group("/items")
		{
			items.PUT("/:id", itemCtrl.Update)
			items.DELETE("/:id", itemCtrl.Delete)
			items.POST("/:id/duplicate", itemCtrl.Duplicate)
		}

		owner.GET("/analytics", analyticsCtrl.Summary)
		owner.POST("/checkout", checkoutCtrl.Checkout)
		owner.POST("/upload", uploadCtrl.Upload)
	}

	return r
}
