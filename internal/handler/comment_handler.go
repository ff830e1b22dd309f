package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yamdb/internal/service"
)

// CommentHandler handles comment endpoints nested under a review.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest carries a comment's text.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func commentScope(c echo.Context) (titleID, reviewID uint, err error) {
	titleID, err = uintParam(c, "title_id")
	if err != nil {
		return 0, 0, err
	}
	reviewID, err = uintParam(c, "review_id")
	if err != nil {
		return 0, 0, err
	}
	return titleID, reviewID, nil
}

// List godoc
// @Summary List a review's comments
// @Tags comments
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 200 {array} CommentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}
	comments, err := h.commentService.ListForReview(c.Request().Context(), titleID, reviewID)
	if err != nil {
		return domainError(err)
	}

	resp := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, newCommentResponse(&comments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} CommentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}
	commentID, err := uintParam(c, "comment_id")
	if err != nil {
		return err
	}
	comment, err := h.commentService.Get(c.Request().Context(), titleID, reviewID, commentID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, newCommentResponse(comment))
}

// Create godoc
// @Summary Comment on a review
// @Tags comments
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Create(c.Request().Context(), currentUser(c), titleID, reviewID, req.Text)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, newCommentResponse(comment))
}

// Update godoc
// @Summary Patch a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 200 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [patch]
func (h *CommentHandler) Update(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}
	commentID, err := uintParam(c, "comment_id")
	if err != nil {
		return err
	}
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Update(c.Request().Context(), currentUser(c), titleID, reviewID, commentID, req.Text)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, newCommentResponse(comment))
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	titleID, reviewID, err := commentScope(c)
	if err != nil {
		return err
	}
	commentID, err := uintParam(c, "comment_id")
	if err != nil {
		return err
	}
	if err := h.commentService.Delete(c.Request().Context(), currentUser(c), titleID, reviewID, commentID); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
