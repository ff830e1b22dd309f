package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yamdb/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// SlugRequest creates a slug-keyed catalog entry (category or genre).
type SlugRequest struct {
	Name string `json:"name" validate:"required,max=60"`
	Slug string `json:"slug" validate:"required,max=60"`
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "Name substring filter"
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body SlugRequest true "Category payload"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req SlugRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), currentUser(c), req.Name, req.Slug)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

// Delete godoc
// @Summary Delete a category by slug
// @Tags categories
// @Param slug path string true "Category slug"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /categories/{slug} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryService.Delete(c.Request().Context(), currentUser(c), c.Param("slug")); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
