package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	_ "yamdb/docs" // swagger docs

	"yamdb/internal/auth"
	"yamdb/internal/config"
	"yamdb/internal/db"
	"yamdb/internal/handler"
	"yamdb/internal/mailer"
	"yamdb/internal/model"
	"yamdb/internal/repository"
	"yamdb/internal/router"
	"yamdb/internal/service"
)

// @title YaMDb API
// @version 1.0
// @description Review aggregation API: categorized titles, one scored review per user per title, comments, passwordless email auth.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Comment{},
			&model.Review{},
			&model.Title{},
			&model.Genre{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Genre{},
		&model.Title{},
		&model.Review{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(gormDB)
	genreRepo := repository.NewGenreRepository(gormDB)
	titleRepo := repository.NewTitleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	codeStore := auth.NewCodeStore(redisClient)
	smtpMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPSender)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, codeStore, smtpMailer)
	categoryService := service.NewCategoryService(categoryRepo)
	genreService := service.NewGenreService(genreRepo)
	titleService := service.NewTitleService(titleRepo, categoryRepo, genreRepo)
	reviewService := service.NewReviewService(reviewRepo, titleRepo)
	commentService := service.NewCommentService(commentRepo, reviewRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	genreHandler := handler.NewGenreHandler(genreService)
	titleHandler := handler.NewTitleHandler(titleService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		categoryHandler,
		genreHandler,
		titleHandler,
		reviewHandler,
		commentHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
