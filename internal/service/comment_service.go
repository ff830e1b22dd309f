package service

import (
	"context"

	"yamdb/internal/errors"
	"yamdb/internal/model"
	"yamdb/internal/permission"
	"yamdb/internal/repository"
)

// CommentService handles comments nested under a review. Every operation
// performs the compound (title, review) lookup first: a review id that
// exists under a different title is treated as missing, never silently
// accepted.
type CommentService interface {
	ListForReview(ctx context.Context, titleID, reviewID uint) ([]model.Comment, error)
	Get(ctx context.Context, titleID, reviewID, commentID uint) (*model.Comment, error)
	Create(ctx context.Context, caller *model.User, titleID, reviewID uint, text string) (*model.Comment, error)
	Update(ctx context.Context, caller *model.User, titleID, reviewID, commentID uint, text string) (*model.Comment, error)
	Delete(ctx context.Context, caller *model.User, titleID, reviewID, commentID uint) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

// ListForReview lists a review's comments in insertion order.
func (s *commentService) ListForReview(ctx context.Context, titleID, reviewID uint) ([]model.Comment, error) {
	if _, err := s.reviewRepo.FindByIDAndTitle(ctx, reviewID, titleID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByReview(ctx, reviewID)
}

// Get returns one comment scoped to its review and title.
func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID uint) (*model.Comment, error) {
	if _, err := s.reviewRepo.FindByIDAndTitle(ctx, reviewID, titleID); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByIDAndReview(ctx, commentID, reviewID)
}

// Create attaches a comment to the review.
func (s *commentService) Create(ctx context.Context, caller *model.User, titleID, reviewID uint, text string) (*model.Comment, error) {
	if caller == nil {
		return nil, errors.ErrAuthRequired
	}
	review, err := s.reviewRepo.FindByIDAndTitle(ctx, reviewID, titleID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Text:     text,
		AuthorID: caller.ID,
		ReviewID: review.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByIDAndReview(ctx, comment.ID, review.ID)
}

// Update edits a comment's text, author/moderator/admin only.
func (s *commentService) Update(ctx context.Context, caller *model.User, titleID, reviewID, commentID uint, text string) (*model.Comment, error) {
	comment, err := s.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if err := permission.ModifyAuthored(caller, comment.AuthorID); err != nil {
		return nil, err
	}

	comment.Text = text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment.
func (s *commentService) Delete(ctx context.Context, caller *model.User, titleID, reviewID, commentID uint) error {
	comment, err := s.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}
	if err := permission.ModifyAuthored(caller, comment.AuthorID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, comment.ID)
}
