package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"decoriva-server/config"
	"decoriva-server/database"
	"decoriva-server/jobs"
	"decoriva-server/middleware"
	"decoriva-server/routes"
	"decoriva-server/services"
	ws "decoriva-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Seed the catalog on first boot
	seedServices()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security middleware stack
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.CORSMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Decoriva server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Booking update hub
	hub := ws.NewHub()
	go hub.Run()
	routes.InitBookingHub(hub)

	bookingWS := ws.NewBookingHandler(hub)
	router.GET("/api/v1/ws/bookings", bookingWS.HandleBookings)

	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Public catalog
		serviceRoutes := api.Group("/services")
		routes.RegisterServiceRoutes(serviceRoutes)

		// Public role lookup used by the client shell
		userRoutes := api.Group("/users")
		routes.RegisterUserRoutes(userRoutes)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			bookingRoutes := protected.Group("/bookings")
			routes.RegisterBookingRoutes(bookingRoutes)

			paymentRoutes := protected.Group("/payments")
			routes.RegisterPaymentRoutes(paymentRoutes)

			decoratorRequestRoutes := protected.Group("/decorator-requests")
			routes.RegisterDecoratorRequestRoutes(decoratorRequestRoutes)
		}

		// Admin routes
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			routes.RegisterAdminRoutes(adminRoutes)
			routes.RegisterAdminServiceRoutes(adminRoutes)
			routes.RegisterAdminUserRoutes(adminRoutes)
			routes.RegisterAdminDecoratorRequestRoutes(adminRoutes)
			routes.RegisterServiceMediaRoutes(adminRoutes)
		}
	}

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start background jobs
	expirationJob := jobs.NewExpirationJob()
	expirationJob.Start()
	defer expirationJob.Stop()

	// Daily refresh token cleanup
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			jwtService := services.NewJWTService()
			if err := jwtService.CleanupExpiredTokens(); err != nil {
				log.Printf("❌ Token cleanup failed: %v", err)
			}
		}
	}()

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
