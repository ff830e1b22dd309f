package service

import (
	"context"
	"time"

	"yamdb/internal/errors"
	"yamdb/internal/model"
	"yamdb/internal/permission"
	"yamdb/internal/repository"
)

// TitleInput carries the writable title fields. Category and genres are
// referenced by slug, the way the public API addresses them.
type TitleInput struct {
	Name        string
	Year        int
	Category    string
	Genres      []string
	Description *string
}

// TitleUpdate carries a partial update; nil fields stay untouched.
type TitleUpdate struct {
	Name        *string
	Year        *int
	Category    *string
	Genres      []string
	Description *string
}

// TitleService handles title operations and their derived ratings.
type TitleService interface {
	List(ctx context.Context, filter repository.TitleFilter) ([]repository.TitleWithRating, error)
	Get(ctx context.Context, id uint) (*repository.TitleWithRating, error)
	Create(ctx context.Context, caller *model.User, input TitleInput) (*repository.TitleWithRating, error)
	Update(ctx context.Context, caller *model.User, id uint, update TitleUpdate) (*repository.TitleWithRating, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type titleService struct {
	titleRepo    repository.TitleRepository
	categoryRepo repository.CategoryRepository
	genreRepo    repository.GenreRepository
}

// NewTitleService creates a new title service.
func NewTitleService(titleRepo repository.TitleRepository, categoryRepo repository.CategoryRepository, genreRepo repository.GenreRepository) TitleService {
	return &titleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
	}
}

// List returns titles with their derived mean ratings, rating ascending.
func (s *titleService) List(ctx context.Context, filter repository.TitleFilter) ([]repository.TitleWithRating, error) {
	return s.titleRepo.ListWithRating(ctx, filter)
}

// Get returns one title with its derived rating.
func (s *titleService) Get(ctx context.Context, id uint) (*repository.TitleWithRating, error) {
	return s.titleRepo.FindWithRating(ctx, id)
}

// Create creates a title. The year must not exceed the current calendar
// year, and every referenced category/genre slug must exist.
func (s *titleService) Create(ctx context.Context, caller *model.User, input TitleInput) (*repository.TitleWithRating, error) {
	if err := permission.WriteCatalog(caller); err != nil {
		return nil, err
	}
	if err := validateYear(input.Year); err != nil {
		return nil, err
	}

	title := &model.Title{
		Name:        input.Name,
		Year:        input.Year,
		Description: input.Description,
	}
	if input.Category != "" {
		category, err := s.categoryRepo.FindBySlug(ctx, input.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}
	if len(input.Genres) > 0 {
		genres, err := s.genreRepo.FindBySlugs(ctx, input.Genres)
		if err != nil {
			return nil, err
		}
		title.Genres = genres
	}

	if err := s.titleRepo.Create(ctx, title); err != nil {
		return nil, err
	}
	return s.titleRepo.FindWithRating(ctx, title.ID)
}

// Update applies a partial update to a title.
func (s *titleService) Update(ctx context.Context, caller *model.User, id uint, update TitleUpdate) (*repository.TitleWithRating, error) {
	if err := permission.WriteCatalog(caller); err != nil {
		return nil, err
	}

	title, err := s.titleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		title.Name = *update.Name
	}
	if update.Year != nil {
		if err := validateYear(*update.Year); err != nil {
			return nil, err
		}
		title.Year = *update.Year
	}
	if update.Description != nil {
		title.Description = update.Description
	}
	if update.Category != nil {
		if *update.Category == "" {
			title.CategoryID = nil
		} else {
			category, err := s.categoryRepo.FindBySlug(ctx, *update.Category)
			if err != nil {
				return nil, err
			}
			title.CategoryID = &category.ID
		}
	}
	if update.Genres != nil {
		genres, err := s.genreRepo.FindBySlugs(ctx, update.Genres)
		if err != nil {
			return nil, err
		}
		title.Genres = genres
	} else {
		// Leave the association untouched; Update replaces whatever is set.
		existing, err := s.titleRepo.FindWithRating(ctx, id)
		if err != nil {
			return nil, err
		}
		title.Genres = existing.Genres
	}

	if err := s.titleRepo.Update(ctx, title); err != nil {
		return nil, err
	}
	return s.titleRepo.FindWithRating(ctx, id)
}

// Delete removes a title and, through the cascade, all of its reviews.
func (s *titleService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if err := permission.WriteCatalog(caller); err != nil {
		return err
	}
	return s.titleRepo.Delete(ctx, id)
}

func validateYear(year int) error {
	if year > time.Now().Year() {
		return errors.ErrInvalidYear
	}
	return nil
}
