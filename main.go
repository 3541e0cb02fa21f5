package main

import (
	"log"

	"shaqyrtu-backend/config"
	"shaqyrtu-backend/database"
	"shaqyrtu-backend/handlers"
	"shaqyrtu-backend/middleware"
	"shaqyrtu-backend/render"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config.Load()

	// Connect to database
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Load embedded invitation templates
	registry, err := render.NewRegistry()
	if err != nil {
		log.Fatal("Failed to load templates:", err)
	}
	renderer := render.NewRenderer(registry, render.NewNormalizer(config.AppConfig.PublicBaseURL))
	handlers.SetupRenderer(renderer)
	handlers.StartPreviewJanitor()
	log.Printf("🎨 Loaded %d template categories", len(registry.CategoryNames()))

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	// Uploaded media (photos, music)
	r.Static("/uploads", config.AppConfig.UploadsDir)

	// Shareable guest page
	r.GET("/invite/:slug", handlers.ViewInvite)

	// ==========================================
	// AUTH ROUTES (public)
	// ==========================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// ==========================================
	// PUBLIC API ROUTES
	// ==========================================
	public := r.Group("/api/v1")
	{
		public.GET("/templates", handlers.GetTemplates)
		public.GET("/invites/slug/:slug", handlers.GetPublicInvite)
		public.POST("/invites/:id/respond", handlers.Respond)
	}

	// ==========================================
	// API ROUTES (authenticated)
	// ==========================================
	api := r.Group("/api/v1")
	api.Use(middleware.AuthRequired())
	{
		// User
		api.GET("/users/me", handlers.GetMe)
		api.PUT("/users/fcm-token", handlers.UpdateFCMToken)

		// Invites
		api.POST("/invites", handlers.CreateInvite)
		api.GET("/invites/my", handlers.GetMyInvites)
		api.GET("/invites/:id", handlers.GetInvite)
		api.PUT("/invites/:id", handlers.UpdateInvite)
		api.DELETE("/invites/:id", handlers.DeleteInvite)
		api.GET("/invites/:id/responses", handlers.GetResponses)
		api.GET("/invites/:id/stats", handlers.GetStats)

		// Uploads
		api.POST("/uploads/image", handlers.UploadImage)
		api.POST("/uploads/audio", handlers.UploadAudio)
		api.GET("/uploads/list", handlers.ListUploads)

		// Live preview sessions
		api.POST("/preview", handlers.CreatePreview)
		api.PUT("/preview/:sid", handlers.UpdatePreview)
		api.GET("/preview/:sid/document", handlers.PreviewDocument)
		api.GET("/preview/:sid/events", handlers.PreviewEvents)
		api.DELETE("/preview/:sid", handlers.ClosePreview)
	}

	// Start server
	port := config.AppConfig.Port
	addr := "0.0.0.0:" + port
	log.Printf("🚀 %s server starting on %s", config.AppConfig.AppName, addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
