package repository

import (
	"context"

	"gorm.io/gorm"

	"yamdb/internal/errors"
	"yamdb/internal/model"
)

// GenreRepository defines genre persistence operations.
type GenreRepository interface {
	List(ctx context.Context, search string) ([]model.Genre, error)
	FindBySlug(ctx context.Context, slug string) (*model.Genre, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]model.Genre, error)
	Create(ctx context.Context, genre *model.Genre) error
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository.
func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

// List lists genres, optionally filtered by a name substring.
func (r *genreRepository) List(ctx context.Context, search string) ([]model.Genre, error) {
	q := r.db.WithContext(ctx).Order("genres.id ASC")
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var genres []model.Genre
	if err := q.Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

// FindBySlug finds a genre by slug.
func (r *genreRepository) FindBySlug(ctx context.Context, slug string) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&genre).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGenreNotFound
		}
		return nil, err
	}
	return &genre, nil
}

// FindBySlugs resolves a set of slugs. A slug that resolves to nothing
// fails the whole lookup rather than being silently dropped.
func (r *genreRepository) FindBySlugs(ctx context.Context, slugs []string) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&genres).Error; err != nil {
		return nil, err
	}
	if len(genres) != len(slugs) {
		return nil, errors.ErrGenreNotFound
	}
	return genres, nil
}

// Create creates a new genre.
func (r *genreRepository) Create(ctx context.Context, genre *model.Genre) error {
	if err := r.db.WithContext(ctx).Create(genre).Error; err != nil {
		if isDuplicateEntry(err) {
			return errors.ErrSlugTaken
		}
		return err
	}
	return nil
}

// DeleteBySlug removes a genre.
func (r *genreRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.Genre{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrGenreNotFound
	}
	return nil
}
