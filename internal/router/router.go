package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"examdesk/internal/config"
	"examdesk/internal/handler"
)

// Register wires routes and middleware.
//
// Papers and questions sit outside the JWT group; the original API shipped
// with their auth guard disabled and clients depend on that.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	examHandler *handler.ExamHandler,
	courseHandler *handler.CourseHandler,
	paperHandler *handler.PaperHandler,
	questionHandler *handler.QuestionHandler,
	enrollmentHandler *handler.EnrollmentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public auth routes
	e.POST("/auth", authHandler.Login)
	e.GET("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/reset", authHandler.ResetPassword)

	// Open resource routes
	registerResource(e.Group("/papers"), paperHandler.List, paperHandler.Create, paperHandler.Update, paperHandler.Delete)
	registerResource(e.Group("/questions"), questionHandler.List, questionHandler.Create, questionHandler.Update, questionHandler.Delete)

	// Secured resource routes (require an access token)
	jwtConfig := echojwt.Config{
		SigningKey:  []byte(cfg.AccessTokenSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
	}
	registerResource(e.Group("/users", echojwt.WithConfig(jwtConfig)), userHandler.List, userHandler.Create, userHandler.Update, userHandler.Delete)
	registerResource(e.Group("/exams", echojwt.WithConfig(jwtConfig)), examHandler.List, examHandler.Create, examHandler.Update, examHandler.Delete)
	registerResource(e.Group("/courses", echojwt.WithConfig(jwtConfig)), courseHandler.List, courseHandler.Create, courseHandler.Update, courseHandler.Delete)
	registerResource(e.Group("/enrollments", echojwt.WithConfig(jwtConfig)), enrollmentHandler.List, enrollmentHandler.Create, enrollmentHandler.Update, enrollmentHandler.Delete)
}

func registerResource(g *echo.Group, list, create, update, del echo.HandlerFunc) {
	g.GET("", list)
	g.POST("", create)
	g.PATCH("", update)
	g.DELETE("", del)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
