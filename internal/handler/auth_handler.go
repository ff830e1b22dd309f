package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yamdb/internal/service"
)

// AuthHandler handles the passwordless signup endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// EmailRequest asks for a confirmation code to be mailed.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenRequest exchanges a confirmation code for an access token.
type TokenRequest struct {
	Email      string `json:"email" validate:"required,email"`
	ConfirmKey string `json:"confirm_key" validate:"required"`
}

// TokenResponse carries the signed access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// RequestToken godoc
// @Summary Request a confirmation code by email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email address"
// @Success 201 {object} EmailRequest
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/email [post]
func (h *AuthHandler) RequestToken(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.RequestToken(c.Request().Context(), req.Email); err != nil {
		return domainError(err)
	}
	// The code travels by mail only; echo back the address.
	return c.JSON(http.StatusCreated, req)
}

// ExchangeToken godoc
// @Summary Exchange a confirmation code for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Email and confirmation key"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) ExchangeToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.ExchangeToken(c.Request().Context(), req.Email, req.ConfirmKey)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}
