package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"yamdb/internal/errors"
	"yamdb/internal/model"
	"yamdb/internal/repository"
)

// CurrentUserKey is the echo context key under which the authentication
// middleware stores the resolved *model.User. Absent for anonymous calls.
const CurrentUserKey = "current_user"

// currentUser returns the authenticated caller, or nil for anonymous.
func currentUser(c echo.Context) *model.User {
	user, _ := c.Get(CurrentUserKey).(*model.User)
	return user
}

// uintParam parses a numeric path parameter.
func uintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(v), nil
}

// pageQuery parses the page/page_size query parameters. Unparsable values
// fall back to the defaults; the repository clamps the range.
func pageQuery(c echo.Context) repository.Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	return repository.Pagination{Page: page, PageSize: size}
}

// domainError translates a service error into an echo HTTP error.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// ReviewResponse is the public shape of a review; the author appears as
// their username.
type ReviewResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func newReviewResponse(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		Text:    r.Text,
		Author:  r.Author.Username,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}

// CommentResponse is the public shape of a comment.
type CommentResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func newCommentResponse(cm *model.Comment) CommentResponse {
	return CommentResponse{
		ID:      cm.ID,
		Text:    cm.Text,
		Author:  cm.Author.Username,
		PubDate: cm.PubDate,
	}
}
