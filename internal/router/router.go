// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vintagecottage/storefront/internal/config"
	"github.com/vintagecottage/storefront/internal/handlers"
	"github.com/vintagecottage/storefront/internal/middleware"
	"github.com/vintagecottage/storefront/internal/services"
	"github.com/vintagecottage/storefront/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService()
	storageService, _ := services.NewStorageService(cfg)

	catalogService := services.NewCatalogService(db, notificationService)
	cartService := services.NewCartService(db)
	offerService := services.NewOfferService(db, notificationService)
	visitorService := services.NewVisitorService(db)
	checkoutService := services.NewCheckoutService(db, cartService, notificationService, cfg)
	authService := services.NewAuthService(db, cfg)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	submissionHandler := handlers.NewSubmissionHandler(catalogService)
	offerHandler := handlers.NewOfferHandler(offerService)
	visitorHandler := handlers.NewVisitorHandler(visitorService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(authService, adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.CartSession())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Locally stored uploads (S3 handles this in production)
	r.Static("/uploads", "./uploads")

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product catalog
		v1.GET("/categories", productHandler.GetCategories)
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("/:id/offers", middleware.SubmitRateLimit(), offerHandler.CreateUserOffer)
		}

		// Session cart
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productID", cartHandler.SetQuantity)
			cart.DELETE("/items/:productID", cartHandler.RemoveItem)
		}

		// Sell-your-antiques submissions
		submissions := v1.Group("/submissions")
		submissions.Use(middleware.SubmitRateLimit())
		{
			submissions.POST("", submissionHandler.CreateSubmission)
		}

		// Promotional offers (public read)
		v1.GET("/offers", offerHandler.GetOffers)

		// Visitor registration
		visitors := v1.Group("/visitors")
		visitors.Use(middleware.SubmitRateLimit())
		{
			visitors.POST("", visitorHandler.RegisterVisitor)
		}

		// Checkout and orders
		v1.POST("/checkout", checkoutHandler.Checkout)
		orders := v1.Group("/orders")
		{
			orders.GET("/:id", checkoutHandler.GetOrder)
			orders.POST("/:id/confirm", checkoutHandler.ConfirmOrder)
		}

		// In-process notifications
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.GET("/unread-count", notificationHandler.GetUnreadCount)
			notifications.GET("/snapshot", notificationHandler.GetSnapshot)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.RemoveNotification)
			notifications.DELETE("", notificationHandler.ClearNotifications)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.POST("/login", middleware.AuthRateLimit(), adminHandler.Login)

			protected := admin.Group("")
			protected.Use(middleware.AdminRequired())
			{
				protected.GET("/dashboard", adminHandler.GetDashboard)
				protected.POST("/change-password", adminHandler.ChangePassword)

				protected.POST("/products", productHandler.CreateProduct)
				protected.PUT("/products/:id", productHandler.UpdateProduct)
				protected.DELETE("/products/:id", productHandler.DeleteProduct)

				protected.GET("/submissions", submissionHandler.GetSubmissions)
				protected.GET("/submissions/:id", submissionHandler.GetSubmission)
				protected.PUT("/submissions/:id", submissionHandler.UpdateSubmission)
				protected.DELETE("/submissions/:id", submissionHandler.DeleteSubmission)
				protected.PUT("/submissions/:id/approve", submissionHandler.ApproveSubmission)
				protected.PUT("/submissions/:id/reject", submissionHandler.RejectSubmission)
				protected.POST("/submissions/:id/add-to-shop", submissionHandler.AddToShop)

				protected.POST("/offers", offerHandler.CreateOffer)
				protected.PUT("/offers/:id", offerHandler.UpdateOffer)
				protected.DELETE("/offers/:id", offerHandler.DeleteOffer)

				protected.GET("/user-offers", offerHandler.GetUserOffers)
				protected.DELETE("/user-offers/:id", offerHandler.DeleteUserOffer)

				protected.GET("/visitors", visitorHandler.GetVisitors)
				protected.GET("/orders", checkoutHandler.GetOrders)

				protected.POST("/uploads/:category", middleware.UploadRateLimit(), productHandler.UploadImage)
			}
		}
	}

	return r
}
