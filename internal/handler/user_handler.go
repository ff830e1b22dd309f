package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yamdb/internal/model"
	"yamdb/internal/service"
)

// UserHandler handles the admin user CRUD and the "me" endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserCreateRequest creates a user through the admin endpoints.
type UserCreateRequest struct {
	Email     string     `json:"email" validate:"required,email"`
	Username  string     `json:"username" validate:"required,max=150"`
	FirstName string     `json:"first_name" validate:"max=150"`
	LastName  string     `json:"last_name" validate:"max=150"`
	Bio       string     `json:"bio" validate:"max=50"`
	Role      model.Role `json:"role"`
}

// UserUpdateRequest patches a user; nil fields stay untouched.
type UserUpdateRequest struct {
	Username  *string     `json:"username" validate:"omitempty,max=150"`
	FirstName *string     `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string     `json:"last_name" validate:"omitempty,max=150"`
	Bio       *string     `json:"bio" validate:"omitempty,max=50"`
	Role      *model.Role `json:"role"`
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context(), currentUser(c), pageQuery(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get a user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetByUsername(c.Request().Context(), currentUser(c), c.Param("username"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserCreateRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), currentUser(c), service.UserInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      req.Role,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Patch a user
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body UserUpdateRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{username} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), currentUser(c), c.Param("username"), service.UserUpdate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      req.Role,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Param username path string true "Username"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), currentUser(c), c.Param("username")); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMe godoc
// @Summary Get the authenticated user's own record
// @Tags users
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	caller := currentUser(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(http.StatusOK, caller)
}

// UpdateMe godoc
// @Summary Patch the authenticated user's own record
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserUpdateRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Role is deliberately not passed through: self-service edits cannot
	// change authorization tier.
	user, err := h.userService.UpdateMe(c.Request().Context(), currentUser(c), service.UserUpdate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}
