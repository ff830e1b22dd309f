package service

import (
	"context"

	"yamdb/internal/model"
	"yamdb/internal/permission"
	"yamdb/internal/repository"
)

// GenreService handles genre operations.
type GenreService interface {
	List(ctx context.Context, search string) ([]model.Genre, error)
	Create(ctx context.Context, caller *model.User, name, slug string) (*model.Genre, error)
	Delete(ctx context.Context, caller *model.User, slug string) error
}

type genreService struct {
	repo repository.GenreRepository
}

// NewGenreService creates a new genre service.
func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

// List lists genres matching the optional name search.
func (s *genreService) List(ctx context.Context, search string) ([]model.Genre, error) {
	return s.repo.List(ctx, search)
}

// Create creates a genre; the slug must be unused.
func (s *genreService) Create(ctx context.Context, caller *model.User, name, slug string) (*model.Genre, error) {
	if err := permission.WriteCatalog(caller); err != nil {
		return nil, err
	}
	genre := &model.Genre{Name: name, Slug: slug}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Delete removes a genre by slug.
func (s *genreService) Delete(ctx context.Context, caller *model.User, slug string) error {
	if err := permission.WriteCatalog(caller); err != nil {
		return err
	}
	return s.repo.DeleteBySlug(ctx, slug)
}
