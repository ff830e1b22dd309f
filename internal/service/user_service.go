package service

import (
	"context"

	"yamdb/internal/errors"
	"yamdb/internal/model"
	"yamdb/internal/permission"
	"yamdb/internal/repository"
)

// UserInput carries the writable user fields for the admin endpoints.
type UserInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Bio       string
	Role      model.Role
}

// UserUpdate carries a partial user update; nil fields stay untouched.
type UserUpdate struct {
	Username  *string
	FirstName *string
	LastName  *string
	Bio       *string
	Role      *model.Role
}

// UserService handles the admin user CRUD and the "me" endpoints.
type UserService interface {
	List(ctx context.Context, caller *model.User, page repository.Pagination) ([]model.User, error)
	GetByUsername(ctx context.Context, caller *model.User, username string) (*model.User, error)
	Create(ctx context.Context, caller *model.User, input UserInput) (*model.User, error)
	Update(ctx context.Context, caller *model.User, username string, update UserUpdate) (*model.User, error)
	Delete(ctx context.Context, caller *model.User, username string) error
	UpdateMe(ctx context.Context, caller *model.User, update UserUpdate) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// List lists one page of users, admin only.
func (s *userService) List(ctx context.Context, caller *model.User, page repository.Pagination) ([]model.User, error) {
	if err := permission.ManageUsers(caller); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, page)
}

// GetByUsername returns one user, admin only.
func (s *userService) GetByUsername(ctx context.Context, caller *model.User, username string) (*model.User, error) {
	if err := permission.ManageUsers(caller); err != nil {
		return nil, err
	}
	return s.repo.FindByUsername(ctx, username)
}

// Create creates a user with an explicit role, admin only.
func (s *userService) Create(ctx context.Context, caller *model.User, input UserInput) (*model.User, error) {
	if err := permission.ManageUsers(caller); err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = model.RoleUser
	}
	if !role.Valid() {
		return nil, errors.ErrInvalidRole
	}

	user := &model.User{
		Email:     input.Email,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
		Role:      role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to a user, admin only. This is the only
// path that may change a role.
func (s *userService) Update(ctx context.Context, caller *model.User, username string, update UserUpdate) (*model.User, error) {
	if err := permission.ManageUsers(caller); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if update.Role != nil {
		if !update.Role.Valid() {
			return nil, errors.ErrInvalidRole
		}
		user.Role = *update.Role
	}
	applyProfile(user, update)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user, admin only.
func (s *userService) Delete(ctx context.Context, caller *model.User, username string) error {
	if err := permission.ManageUsers(caller); err != nil {
		return err
	}
	return s.repo.DeleteByUsername(ctx, username)
}

// UpdateMe lets any authenticated user edit their own profile. The role
// field is ignored here: only the admin endpoints may change tiers.
func (s *userService) UpdateMe(ctx context.Context, caller *model.User, update UserUpdate) (*model.User, error) {
	if caller == nil {
		return nil, errors.ErrAuthRequired
	}
	user, err := s.repo.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	applyProfile(user, update)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func applyProfile(user *model.User, update UserUpdate) {
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
}
