package router

import (
	"net/http"
	"strings"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"yamdb/internal/auth"
	"yamdb/internal/handler"
	"yamdb/internal/repository"
)

// OptionalAuth resolves the caller from a Bearer token when one is
// present. Anonymous requests pass through untouched; a malformed or
// expired token is rejected rather than demoted to anonymous. The user
// record is read fresh from the store on every request so role changes
// never linger in a credential.
func OptionalAuth(jwtService *auth.JWTService, userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, prefix))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			user, err := userRepo.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			c.Set(handler.CurrentUserKey, user)
			return next(c)
		}
	}
}

// LoadUser runs behind the echo-jwt middleware on required-auth groups,
// turning the verified claims into a fresh user record.
func LoadUser(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}
			id, ok := claims["user_id"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			user, err := userRepo.FindByID(c.Request().Context(), uint(id))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			c.Set(handler.CurrentUserKey, user)
			return next(c)
		}
	}
}
