package service

import (
	"context"

	"yamdb/internal/model"
	"yamdb/internal/permission"
	"yamdb/internal/repository"
)

// CategoryService handles category operations. Reads are open; writes
// require the admin role.
type CategoryService interface {
	List(ctx context.Context, search string) ([]model.Category, error)
	Create(ctx context.Context, caller *model.User, name, slug string) (*model.Category, error)
	Delete(ctx context.Context, caller *model.User, slug string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// List lists categories matching the optional name search.
func (s *categoryService) List(ctx context.Context, search string) ([]model.Category, error) {
	return s.repo.List(ctx, search)
}

// Create creates a category; the slug must be unused.
func (s *categoryService) Create(ctx context.Context, caller *model.User, name, slug string) (*model.Category, error) {
	if err := permission.WriteCatalog(caller); err != nil {
		return nil, err
	}
	category := &model.Category{Name: name, Slug: slug}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category by slug. Titles in the category survive with
// their category reference nulled.
func (s *categoryService) Delete(ctx context.Context, caller *model.User, slug string) error {
	if err := permission.WriteCatalog(caller); err != nil {
		return err
	}
	return s.repo.DeleteBySlug(ctx, slug)
}
