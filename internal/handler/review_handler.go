package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yamdb/internal/service"
)

// ReviewHandler handles review endpoints nested under a title.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewCreateRequest submits a review with a 1..10 score.
type ReviewCreateRequest struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"required"`
}

// ReviewUpdateRequest patches a review.
type ReviewUpdateRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

// List godoc
// @Summary List a title's reviews
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title ID"
// @Success 200 {array} ReviewResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /titles/{title_id}/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	titleID, err := uintParam(c, "title_id")
	if err != nil {
		return err
	}
	reviews, err := h.reviewService.ListForTitle(c.Request().Context(), titleID)
	if err != nil {
		return domainError(err)
	}

	resp := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, newReviewResponse(&reviews[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 200 {object} ReviewResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	titleID, err := uintParam(c, "title_id")
	if err != nil {
		return err
	}
	reviewID, err := uintParam(c, "review_id")
	if err != nil {
		return err
	}
	review, err := h.reviewService.Get(c.Request().Context(), titleID, reviewID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, newReviewResponse(review))
}

// Create godoc
// @Summary Review a title
// @Tags reviews
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param request body ReviewCreateRequest true "Review payload"
// @Success 201 {object} ReviewResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles/{title_id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	titleID, err := uintParam(c, "title_id")
	if err != nil {
		return err
	}
	var req ReviewCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewService.Create(c.Request().Context(), currentUser(c), titleID, req.Text, req.Score)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, newReviewResponse(review))
}

// Update godoc
// @Summary Patch a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param request body ReviewUpdateRequest true "Fields to change"
// @Success 200 {object} ReviewResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id} [patch]
func (h *ReviewHandler) Update(c echo.Context) error {
	titleID, err := uintParam(c, "title_id")
	if err != nil {
		return err
	}
	reviewID, err := uintParam(c, "review_id")
	if err != nil {
		return err
	}
	var req ReviewUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := h.reviewService.Update(c.Request().Context(), currentUser(c), titleID, reviewID, req.Text, req.Score)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, newReviewResponse(review))
}

// Delete godoc
// @Summary Delete a review
// @Tags reviews
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	titleID, err := uintParam(c, "title_id")
	if err != nil {
		return err
	}
	reviewID, err := uintParam(c, "review_id")
	if err != nil {
		return err
	}
	if err := h.reviewService.Delete(c.Request().Context(), currentUser(c), titleID, reviewID); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
