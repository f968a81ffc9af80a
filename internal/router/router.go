package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/voidspace/posts-backend/internal/handlers"
	"github.com/voidspace/posts-backend/internal/middleware"
	"github.com/voidspace/posts-backend/internal/models"
	"github.com/voidspace/posts-backend/internal/repositories"
	"github.com/voidspace/posts-backend/internal/services"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(middleware.Metrics())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Post{},
		&models.Like{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health, banner and metrics - outside the versioned API
	healthHandler := handlers.NewHealthHandler(db)
	e.GET("/health", healthHandler.Check)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Posts API is running"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Repositories ---
	postRepo := repositories.NewPostgresPostRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)

	// --- Services ---
	postService := services.NewPostService(postRepo)
	likeService := services.NewLikeService(likeRepo, postService)

	// --- Handlers ---
	api := e.Group("/api/v1")

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	likeHandler := handlers.NewLikeHandler(likeService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	userHandler := handlers.NewUserHandler(postService, likeService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	log.Println("All routes configured.")
}
