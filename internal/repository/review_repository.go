package repository

import (
	"context"

	"gorm.io/gorm"

	"yamdb/internal/errors"
	"yamdb/internal/model"
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	ListByTitle(ctx context.Context, titleID uint) ([]model.Review, error)
	FindByIDAndTitle(ctx context.Context, id, titleID uint) (*model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// ListByTitle lists a title's reviews in insertion order.
func (r *reviewRepository) ListByTitle(ctx context.Context, titleID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("title_id = ?", titleID).
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByIDAndTitle finds a review by id, scoped to the given title. A
// review that exists under a different title is reported as not found.
func (r *reviewRepository) FindByIDAndTitle(ctx context.Context, id, titleID uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND title_id = ?", id, titleID).
		First(&review).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// Create inserts a review. The (title_id, author_id) unique index rejects
// a second review by the same author atomically, so concurrent submissions
// cannot slip through an application-level existence check.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if isDuplicateEntry(err) {
			return errors.ErrReviewExists
		}
		return err
	}
	return nil
}

// Update saves review fields.
func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// Delete removes a review; its comments cascade.
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrReviewNotFound
	}
	return nil
}
