package main

import (
	"log"
	"net/http"

	_ "examdesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"examdesk/internal/auth"
	"examdesk/internal/cache"
	"examdesk/internal/config"
	"examdesk/internal/db"
	"examdesk/internal/handler"
	"examdesk/internal/model"
	"examdesk/internal/repository"
	"examdesk/internal/router"
	"examdesk/internal/service"
)

// @title ExamDesk API
// @version 1.0
// @description Exam and course management API with JWT authentication.
// @host localhost:8080
// @BasePath /
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

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Course{},
		&model.Paper{},
		&model.Question{},
		&model.Enrollment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	examRepo := repository.NewExamRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	paperRepo := repository.NewPaperRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	examService := service.NewExamService(examRepo, courseRepo)
	courseService := service.NewCourseService(courseRepo, examRepo, paperRepo, enrollmentRepo, cacheClient)
	paperService := service.NewPaperService(paperRepo, courseRepo, questionRepo, cacheClient)
	questionService := service.NewQuestionService(questionRepo, paperRepo, cacheClient)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.RefreshTokenTTL)
	userHandler := handler.NewUserHandler(userService)
	examHandler := handler.NewExamHandler(examService)
	courseHandler := handler.NewCourseHandler(courseService)
	paperHandler := handler.NewPaperHandler(paperService)
	questionHandler := handler.NewQuestionHandler(questionService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		examHandler,
		courseHandler,
		paperHandler,
		questionHandler,
		enrollmentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
