package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"yamdb/internal/repository"
	"yamdb/internal/service"
)

// TitleHandler handles title endpoints.
type TitleHandler struct {
	titleService service.TitleService
}

// NewTitleHandler creates a new title handler.
func NewTitleHandler(titleService service.TitleService) *TitleHandler {
	return &TitleHandler{titleService: titleService}
}

// TitleCreateRequest creates a title; category and genres by slug.
type TitleCreateRequest struct {
	Name        string   `json:"name" validate:"required,max=60"`
	Year        int      `json:"year" validate:"required"`
	Category    string   `json:"category"`
	Genres      []string `json:"genre"`
	Description *string  `json:"description"`
}

// TitleUpdateRequest patches a title; nil fields stay untouched.
type TitleUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=60"`
	Year        *int     `json:"year"`
	Category    *string  `json:"category"`
	Genres      []string `json:"genre"`
	Description *string  `json:"description"`
}

// List godoc
// @Summary List titles with derived ratings
// @Tags titles
// @Produce json
// @Param genre query string false "Genre slug substring"
// @Param category query string false "Category slug substring"
// @Param name query string false "Name substring"
// @Param year query int false "Exact year"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} repository.TitleWithRating
// @Router /titles [get]
func (h *TitleHandler) List(c echo.Context) error {
	filter := repository.TitleFilter{
		Genre:    c.QueryParam("genre"),
		Category: c.QueryParam("category"),
		Name:     c.QueryParam("name"),
		Page:     pageQuery(c),
	}
	if yearParam := c.QueryParam("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		filter.Year = year
	}

	titles, err := h.titleService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, titles)
}

// Get godoc
// @Summary Get a title with its derived rating
// @Tags titles
// @Produce json
// @Param title_id path int true "Title ID"
// @Success 200 {object} repository.TitleWithRating
// @Failure 404 {object} errors.ErrorResponse
// @Router /titles/{title_id} [get]
func (h *TitleHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "title_id")
	if err != nil {
		return err
	}
	title, err := h.titleService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, title)
}

// Create godoc
// @Summary Create a title
// @Tags titles
// @Accept json
// @Produce json
// @Param request body TitleCreateRequest true "Title payload"
// @Success 201 {object} repository.TitleWithRating
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles [post]
func (h *TitleHandler) Create(c echo.Context) error {
	var req TitleCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	title, err := h.titleService.Create(c.Request().Context(), currentUser(c), service.TitleInput{
		Name:        req.Name,
		Year:        req.Year,
		Category:    req.Category,
		Genres:      req.Genres,
		Description: req.Description,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, title)
}

// Update godoc
// @Summary Patch a title
// @Tags titles
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param request body TitleUpdateRequest true "Fields to change"
// @Success 200 {object} repository.TitleWithRating
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles/{title_id} [patch]
func (h *TitleHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "title_id")
	if err != nil {
		return err
	}
	var req TitleUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	title, err := h.titleService.Update(c.Request().Context(), currentUser(c), id, service.TitleUpdate{
		Name:        req.Name,
		Year:        req.Year,
		Category:    req.Category,
		Genres:      req.Genres,
		Description: req.Description,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, title)
}

// Delete godoc
// @Summary Delete a title
// @Tags titles
// @Param title_id path int true "Title ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles/{title_id} [delete]
func (h *TitleHandler) Delete(c echo.Context) error {
	id, err := uintParam(c, "title_id")
	if err != nil {
		return err
	}
	if err := h.titleService.Delete(c.Request().Context(), currentUser(c), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
