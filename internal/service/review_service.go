package service

import (
	"context"

	"yamdb/internal/errors"
	"yamdb/internal/model"
	"yamdb/internal/permission"
	"yamdb/internal/repository"
)

const (
	minScore = 1
	maxScore = 10
)

// ReviewService handles reviews. At most one review may exist per
// (title, author) pair; the score feeds the title's derived rating.
type ReviewService interface {
	ListForTitle(ctx context.Context, titleID uint) ([]model.Review, error)
	Get(ctx context.Context, titleID, reviewID uint) (*model.Review, error)
	Create(ctx context.Context, caller *model.User, titleID uint, text string, score int) (*model.Review, error)
	Update(ctx context.Context, caller *model.User, titleID, reviewID uint, text *string, score *int) (*model.Review, error)
	Delete(ctx context.Context, caller *model.User, titleID, reviewID uint) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	titleRepo  repository.TitleRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, titleRepo repository.TitleRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		titleRepo:  titleRepo,
	}
}

// ListForTitle lists a title's reviews in insertion order.
func (s *reviewService) ListForTitle(ctx context.Context, titleID uint) ([]model.Review, error) {
	if _, err := s.titleRepo.FindByID(ctx, titleID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByTitle(ctx, titleID)
}

// Get returns one review scoped to its title.
func (s *reviewService) Get(ctx context.Context, titleID, reviewID uint) (*model.Review, error) {
	if _, err := s.titleRepo.FindByID(ctx, titleID); err != nil {
		return nil, err
	}
	return s.reviewRepo.FindByIDAndTitle(ctx, reviewID, titleID)
}

// Create validates the score and inserts the review. The publication date
// is assigned by the store at the insert instant; a second review by the
// same author for the same title fails on the unique index.
func (s *reviewService) Create(ctx context.Context, caller *model.User, titleID uint, text string, score int) (*model.Review, error) {
	if caller == nil {
		return nil, errors.ErrAuthRequired
	}
	if err := validateScore(score); err != nil {
		return nil, err
	}
	if _, err := s.titleRepo.FindByID(ctx, titleID); err != nil {
		return nil, err
	}

	review := &model.Review{
		Text:     text,
		AuthorID: caller.ID,
		TitleID:  titleID,
		Score:    score,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return s.reviewRepo.FindByIDAndTitle(ctx, review.ID, titleID)
}

// Update edits a review's text and/or score. Only the author, a moderator
// or an admin may do so; uniqueness is not re-checked since the pair never
// changes.
func (s *reviewService) Update(ctx context.Context, caller *model.User, titleID, reviewID uint, text *string, score *int) (*model.Review, error) {
	review, err := s.Get(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if err := permission.ModifyAuthored(caller, review.AuthorID); err != nil {
		return nil, err
	}

	if text != nil {
		review.Text = *text
	}
	if score != nil {
		if err := validateScore(*score); err != nil {
			return nil, err
		}
		review.Score = *score
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review; its comments cascade away with it.
func (s *reviewService) Delete(ctx context.Context, caller *model.User, titleID, reviewID uint) error {
	review, err := s.Get(ctx, titleID, reviewID)
	if err != nil {
		return err
	}
	if err := permission.ModifyAuthored(caller, review.AuthorID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, review.ID)
}

func validateScore(score int) error {
	if score < minScore || score > maxScore {
		return errors.ErrInvalidScore
	}
	return nil
}
