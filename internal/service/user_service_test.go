package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yamdb/internal/errors"
	"yamdb/internal/model"
	"yamdb/internal/repository"
)

func TestUserService_Create(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}

	tests := []struct {
		name          string
		caller        *model.User
		input         UserInput
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  model.Role
	}{
		{
			name:   "admin creates a moderator",
			caller: admin,
			input:  UserInput{Email: "mod@example.com", Username: "mod", Role: model.RoleModerator},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleModerator,
		},
		{
			name:   "empty role defaults to user",
			caller: admin,
			input:  UserInput{Email: "plain@example.com", Username: "plain"},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleUser,
		},
		{
			name:          "unknown role is rejected",
			caller:        admin,
			input:         UserInput{Email: "x@example.com", Username: "x", Role: model.Role("superuser")},
			setupMock:     func(*MockUserRepository) {},
			expectedError: errors.ErrInvalidRole,
		},
		{
			name:          "moderator may not manage users",
			caller:        &model.User{ID: 2, Role: model.RoleModerator},
			input:         UserInput{Email: "y@example.com", Username: "y"},
			setupMock:     func(*MockUserRepository) {},
			expectedError: errors.ErrForbidden,
		},
		{
			name:   "duplicate email conflicts",
			caller: admin,
			input:  UserInput{Email: "taken@example.com", Username: "taken"},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(errors.ErrUserExists)
			},
			expectedError: errors.ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo)
			user, err := service.Create(context.Background(), tt.caller, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.Role)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ListPassesPageThrough(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	page := repository.Pagination{Page: 2, PageSize: 5}

	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything, page).
		Return([]model.User{{ID: 6, Username: "fiona"}}, nil)

	service := NewUserService(mockRepo)
	users, err := service.List(context.Background(), admin, page)

	assert.NoError(t, err)
	assert.Len(t, users, 1)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateChangesRole(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	moderator := model.RoleModerator

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "alice").
		Return(&model.User{ID: 5, Username: "alice", Role: model.RoleUser}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	service := NewUserService(mockRepo)
	user, err := service.Update(context.Background(), admin, "alice", UserUpdate{Role: &moderator})

	assert.NoError(t, err)
	assert.Equal(t, model.RoleModerator, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateMeIgnoresRole(t *testing.T) {
	caller := &model.User{ID: 5, Username: "alice", Role: model.RoleUser}
	admin := model.RoleAdmin
	bio := "reader"

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).
		Return(&model.User{ID: 5, Username: "alice", Role: model.RoleUser}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	service := NewUserService(mockRepo)
	user, err := service.UpdateMe(context.Background(), caller, UserUpdate{Bio: &bio, Role: &admin})

	assert.NoError(t, err)
	assert.Equal(t, "reader", user.Bio)
	assert.Equal(t, model.RoleUser, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateMeRequiresAuth(t *testing.T) {
	service := NewUserService(new(MockUserRepository))

	user, err := service.UpdateMe(context.Background(), nil, UserUpdate{})

	assert.ErrorIs(t, err, errors.ErrAuthRequired)
	assert.Nil(t, user)
}
