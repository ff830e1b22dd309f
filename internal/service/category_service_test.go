package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yamdb/internal/errors"
	"yamdb/internal/model"
)

func TestCategoryService_Create(t *testing.T) {
	tests := []struct {
		name          string
		caller        *model.User
		setupMock     func(*MockCategoryRepository)
		expectedError error
	}{
		{
			name:   "admin creates a category",
			caller: &model.User{ID: 1, Role: model.RoleAdmin},
			setupMock: func(m *MockCategoryRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
		},
		{
			name:          "regular user is forbidden",
			caller:        &model.User{ID: 2, Role: model.RoleUser},
			setupMock:     func(*MockCategoryRepository) {},
			expectedError: errors.ErrForbidden,
		},
		{
			name:          "anonymous is unauthorized",
			caller:        nil,
			setupMock:     func(*MockCategoryRepository) {},
			expectedError: errors.ErrAuthRequired,
		},
		{
			name:   "duplicate slug conflicts",
			caller: &model.User{ID: 1, Role: model.RoleAdmin},
			setupMock: func(m *MockCategoryRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).
					Return(errors.ErrSlugTaken)
			},
			expectedError: errors.ErrSlugTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			tt.setupMock(mockRepo)

			service := NewCategoryService(mockRepo)
			category, err := service.Create(context.Background(), tt.caller, "Films", "films")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, category)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "films", category.Slug)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_ListIsOpenToAnyone(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("List", mock.Anything, "").Return([]model.Category{{Name: "Films", Slug: "films"}}, nil)

	service := NewCategoryService(mockRepo)
	categories, err := service.List(context.Background(), "")

	assert.NoError(t, err)
	assert.Len(t, categories, 1)
}
