package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yamdb/internal/errors"
	"yamdb/internal/model"
	"yamdb/internal/repository"
)

func TestTitleService_Create(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	catID := uint(2)

	tests := []struct {
		name          string
		caller        *model.User
		input         TitleInput
		setupMock     func(*MockTitleRepository, *MockCategoryRepository, *MockGenreRepository)
		expectedError error
	}{
		{
			name:   "admin creates a categorized title",
			caller: admin,
			input:  TitleInput{Name: "Dune", Year: 2021, Category: "sci-fi", Genres: []string{"drama"}},
			setupMock: func(mTitle *MockTitleRepository, mCat *MockCategoryRepository, mGenre *MockGenreRepository) {
				mCat.On("FindBySlug", mock.Anything, "sci-fi").
					Return(&model.Category{ID: catID, Name: "Sci-Fi", Slug: "sci-fi"}, nil)
				mGenre.On("FindBySlugs", mock.Anything, []string{"drama"}).
					Return([]model.Genre{{ID: 4, Name: "Drama", Slug: "drama"}}, nil)
				mTitle.On("Create", mock.Anything, mock.AnythingOfType("*model.Title")).Return(nil)
				mTitle.On("FindWithRating", mock.Anything, uint(0)).
					Return(&repository.TitleWithRating{Title: model.Title{Name: "Dune", Year: 2021, CategoryID: &catID}}, nil)
			},
		},
		{
			name:          "non-admin is forbidden",
			caller:        &model.User{ID: 5, Role: model.RoleUser},
			input:         TitleInput{Name: "Dune", Year: 2021},
			setupMock:     func(*MockTitleRepository, *MockCategoryRepository, *MockGenreRepository) {},
			expectedError: errors.ErrForbidden,
		},
		{
			name:          "moderator is forbidden",
			caller:        &model.User{ID: 6, Role: model.RoleModerator},
			input:         TitleInput{Name: "Dune", Year: 2021},
			setupMock:     func(*MockTitleRepository, *MockCategoryRepository, *MockGenreRepository) {},
			expectedError: errors.ErrForbidden,
		},
		{
			name:          "anonymous is unauthorized",
			caller:        nil,
			input:         TitleInput{Name: "Dune", Year: 2021},
			setupMock:     func(*MockTitleRepository, *MockCategoryRepository, *MockGenreRepository) {},
			expectedError: errors.ErrAuthRequired,
		},
		{
			name:          "future year is rejected",
			caller:        admin,
			input:         TitleInput{Name: "Dune 3", Year: time.Now().Year() + 1},
			setupMock:     func(*MockTitleRepository, *MockCategoryRepository, *MockGenreRepository) {},
			expectedError: errors.ErrInvalidYear,
		},
		{
			name:   "unknown category slug",
			caller: admin,
			input:  TitleInput{Name: "Dune", Year: 2021, Category: "nope"},
			setupMock: func(mTitle *MockTitleRepository, mCat *MockCategoryRepository, mGenre *MockGenreRepository) {
				mCat.On("FindBySlug", mock.Anything, "nope").Return(nil, errors.ErrCategoryNotFound)
			},
			expectedError: errors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTitle := new(MockTitleRepository)
			mockCat := new(MockCategoryRepository)
			mockGenre := new(MockGenreRepository)
			tt.setupMock(mockTitle, mockCat, mockGenre)

			service := NewTitleService(mockTitle, mockCat, mockGenre)
			title, err := service.Create(context.Background(), tt.caller, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, title)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, title)
				assert.Equal(t, tt.input.Name, title.Name)
			}
			mockTitle.AssertExpectations(t)
			mockCat.AssertExpectations(t)
			mockGenre.AssertExpectations(t)
		})
	}
}

func TestTitleService_ListPassesFilterThrough(t *testing.T) {
	rating := 9.0
	mockTitle := new(MockTitleRepository)
	filter := repository.TitleFilter{
		Category: "sci-fi",
		Year:     2021,
		Page:     repository.Pagination{Page: 2, PageSize: 25},
	}
	mockTitle.On("ListWithRating", mock.Anything, filter).Return([]repository.TitleWithRating{
		{Title: model.Title{ID: 1, Name: "Dune", Year: 2021}, Rating: &rating},
	}, nil)

	service := NewTitleService(mockTitle, new(MockCategoryRepository), new(MockGenreRepository))
	titles, err := service.List(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, titles, 1)
	assert.Equal(t, 9.0, *titles[0].Rating)
}
