package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yamdb/internal/errors"
	"yamdb/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	List(ctx context.Context, page Pagination) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	GetOrCreateByEmail(ctx context.Context, email, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	DeleteByUsername(ctx context.Context, username string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// List returns one page of users ordered by username.
func (r *userRepository) List(ctx context.Context, page Pagination) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("username ASC").
		Limit(page.limit()).Offset(page.offset()).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by id.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetOrCreateByEmail returns the user for email, creating it if absent.
// The insert uses ON CONFLICT DO NOTHING, so two concurrent signups for
// the same address end up with one row. On MySQL the do-nothing clause
// also swallows a username collision: the insert no-ops and the re-read
// by email misses. That case comes back as ErrUserExists so the caller
// can retry with a different username.
func (r *userRepository) GetOrCreateByEmail(ctx context.Context, email, username string) (*model.User, error) {
	user := &model.User{
		Email:    email,
		Username: username,
		Role:     model.RoleUser,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(user).Error
	if err != nil && !isDuplicateEntry(err) {
		return nil, err
	}
	// Re-read to cover the do-nothing path, where user.ID stays zero.
	existing, err := r.FindByEmail(ctx, email)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		// No row for the email, so the username index blocked the insert.
		return nil, errors.ErrUserExists
	}
	return existing, err
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return errors.ErrUserExists
		}
		return err
	}
	return nil
}

// Update saves user fields.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return errors.ErrUserExists
		}
		return err
	}
	return nil
}

// DeleteByUsername removes a user. Their reviews and comments cascade.
func (r *userRepository) DeleteByUsername(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Where("username = ?", username).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrUserNotFound
	}
	return nil
}
