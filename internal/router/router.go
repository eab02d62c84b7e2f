package router

import (
	"log"
	"time"

	"github.com/Dhruv9449/Chitros/internal/handlers"
	"github.com/Dhruv9449/Chitros/internal/metrics"
	"github.com/Dhruv9449/Chitros/internal/middleware"
	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
	"github.com/Dhruv9449/Chitros/internal/services"
	"github.com/Dhruv9449/Chitros/pkg/blobstore"
	"github.com/Dhruv9449/Chitros/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, m *metrics.Metrics) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(m.Middleware())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, blobs *blobstore.BlobStore) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.FollowRequest{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Welcome to Chitros API"})
	})

	// --- Initialize repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	requestRepo := repositories.NewPostgresFollowRequestRepository(db)

	// --- Initialize services ---
	identityService := services.NewIdentityService(userRepo, postRepo, followRepo)
	graphService := services.NewGraphService(followRepo, requestRepo)
	contentService := services.NewContentService(postRepo, commentRepo, likeRepo, followRepo)
	feedService := services.NewFeedService(postRepo, followRepo)

	// --- Unprotected routes ---
	tokenTTL := time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute
	authHandler := handlers.NewAuthHandler(identityService, cfg.JWTSecret, tokenTTL)
	authHandler.RegisterAuthRoutes(e.Group(""))
	log.Println("Auth routes configured.")

	mediaHandler := handlers.NewMediaHandler(postRepo, userRepo, blobs)
	mediaHandler.RegisterMediaRoutes(e)
	log.Println("Media routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied.")

	userHandler := handlers.NewUserHandler(identityService, blobs)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	followHandler := handlers.NewFollowHandler(graphService, identityService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	postHandler := handlers.NewPostHandler(contentService, identityService, commentRepo, likeRepo, blobs)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(contentService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(contentService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	feedHandler := handlers.NewFeedHandler(feedService, likeRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	log.Println("All routes configured.")
}
