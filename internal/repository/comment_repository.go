package repository

import (
	"context"

	"gorm.io/gorm"

	"yamdb/internal/errors"
	"yamdb/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	ListByReview(ctx context.Context, reviewID uint) ([]model.Comment, error)
	FindByIDAndReview(ctx context.Context, id, reviewID uint) (*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByReview lists a review's comments in insertion order.
func (r *commentRepository) ListByReview(ctx context.Context, reviewID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("review_id = ?", reviewID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByIDAndReview finds a comment by id, scoped to the given review.
func (r *commentRepository) FindByIDAndReview(ctx context.Context, id, reviewID uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND review_id = ?", id, reviewID).
		First(&comment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// Create inserts a comment.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update saves comment fields.
func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete removes a comment.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrCommentNotFound
	}
	return nil
}
