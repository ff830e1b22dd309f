package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"yamdb/internal/auth"
	"yamdb/internal/config"
	"yamdb/internal/handler"
	"yamdb/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	genreHandler *handler.GenreHandler,
	titleHandler *handler.TitleHandler,
	reviewHandler *handler.ReviewHandler,
	commentHandler *handler.CommentHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public signup flow
	api.POST("/auth/email", authHandler.RequestToken)
	api.POST("/auth/token", authHandler.ExchangeToken)

	// Resource routes: reads are anonymous, writes check the resolved
	// caller inside the services, so authentication here is optional.
	res := api.Group("", OptionalAuth(jwtService, userRepo))

	res.GET("/categories", categoryHandler.List)
	res.POST("/categories", categoryHandler.Create)
	res.DELETE("/categories/:slug", categoryHandler.Delete)

	res.GET("/genres", genreHandler.List)
	res.POST("/genres", genreHandler.Create)
	res.DELETE("/genres/:slug", genreHandler.Delete)

	res.GET("/titles", titleHandler.List)
	res.POST("/titles", titleHandler.Create)
	res.GET("/titles/:title_id", titleHandler.Get)
	res.PATCH("/titles/:title_id", titleHandler.Update)
	res.DELETE("/titles/:title_id", titleHandler.Delete)

	res.GET("/titles/:title_id/reviews", reviewHandler.List)
	res.POST("/titles/:title_id/reviews", reviewHandler.Create)
	res.GET("/titles/:title_id/reviews/:review_id", reviewHandler.Get)
	res.PATCH("/titles/:title_id/reviews/:review_id", reviewHandler.Update)
	res.DELETE("/titles/:title_id/reviews/:review_id", reviewHandler.Delete)

	res.GET("/titles/:title_id/reviews/:review_id/comments", commentHandler.List)
	res.POST("/titles/:title_id/reviews/:review_id/comments", commentHandler.Create)
	res.GET("/titles/:title_id/reviews/:review_id/comments/:comment_id", commentHandler.Get)
	res.PATCH("/titles/:title_id/reviews/:review_id/comments/:comment_id", commentHandler.Update)
	res.DELETE("/titles/:title_id/reviews/:review_id/comments/:comment_id", commentHandler.Delete)

	// User routes always require a credential (admin role is enforced in
	// the service; "me" only needs authentication).
	users := api.Group("/users", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), LoadUser(userRepo))

	users.GET("/me", userHandler.GetMe)
	users.PATCH("/me", userHandler.UpdateMe)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:username", userHandler.Get)
	users.PATCH("/:username", userHandler.Update)
	users.DELETE("/:username", userHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
