package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAuthRequired is returned when an operation needs an authenticated caller.
	ErrAuthRequired = errors.New("authentication required")
	// ErrForbidden is returned when the caller's role or ownership is insufficient.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrInvalidConfirmKey is returned for any rejected confirmation code.
	// Deliberately generic: callers cannot tell expired from wrong.
	ErrInvalidConfirmKey = errors.New("invalid confirmation key")
	// ErrInvalidScore is returned when a review score is outside [1,10].
	ErrInvalidScore = errors.New("score must be between 1 and 10")
	// ErrInvalidYear is returned when a title year lies in the future.
	ErrInvalidYear = errors.New("year must not exceed the current year")
	// ErrInvalidRole is returned when a user payload carries an unknown role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrCategoryNotFound is returned when a category slug resolves to nothing.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrGenreNotFound is returned when a genre slug resolves to nothing.
	ErrGenreNotFound = errors.New("genre not found")
	// ErrTitleNotFound is returned when a title id resolves to nothing.
	ErrTitleNotFound = errors.New("title not found")
	// ErrReviewNotFound is returned when a review is missing or does not
	// belong to the title named in the request.
	ErrReviewNotFound = errors.New("review not found")
	// ErrCommentNotFound is returned when a comment is missing or does not
	// belong to the review named in the request.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")

	// ErrReviewExists is returned when the author already reviewed the title.
	ErrReviewExists = errors.New("review by this author already exists for the title")
	// ErrSlugTaken is returned when a category or genre slug is already in use.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrUserExists is returned when an email or username is already in use.
	ErrUserExists = errors.New("email or username already in use")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAuthRequired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "AUTH_REQUIRED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidConfirmKey):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CONFIRM_KEY")
	case errors.Is(err, ErrInvalidScore):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SCORE")
	case errors.Is(err, ErrInvalidYear):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_YEAR")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrGenreNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "GENRE_NOT_FOUND")
	case errors.Is(err, ErrTitleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TITLE_NOT_FOUND")
	case errors.Is(err, ErrReviewNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REVIEW_NOT_FOUND")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrReviewExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "REVIEW_EXISTS")
	case errors.Is(err, ErrSlugTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "SLUG_TAKEN")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_EXISTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
