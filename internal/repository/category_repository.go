package repository

import (
	"context"

	"gorm.io/gorm"

	"yamdb/internal/errors"
	"yamdb/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	List(ctx context.Context, search string) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	DeleteBySlug(ctx context.Context, slug string) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List lists categories, optionally filtered by a name substring.
func (r *categoryRepository) List(ctx context.Context, search string) ([]model.Category, error) {
	q := r.db.WithContext(ctx).Order("categories.id ASC")
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var categories []model.Category
	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindBySlug finds a category by slug.
func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create creates a new category. The slug unique index makes the
// check-and-insert atomic.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isDuplicateEntry(err) {
			return errors.ErrSlugTaken
		}
		return err
	}
	return nil
}

// DeleteBySlug removes a category. Titles referencing it keep existing
// with a nulled category (ON DELETE SET NULL), they are not cascaded.
func (r *categoryRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrCategoryNotFound
	}
	return nil
}
