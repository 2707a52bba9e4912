// Package users provides database operations for users.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.FindByID(ctx, id)
package users

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the user and returns the stored row.
func (r *Repository) Create(ctx context.Context, user entities.User) (*entities.User, error) {
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, apperrors.Database("create user", err)
	}
	return r.mustFind(ctx, user.ID)
}

// FindByID returns nil, nil when no user has the given id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Database("find user", err)
	}
	return &user, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, apperrors.Database("list users", err)
	}
	return users, nil
}

// Update writes only the staged columns of an existing user.
func (r *Repository) Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user", id)
	}

	if err := r.db.WithContext(ctx).Model(user).Updates(map[string]any(changes)).Error; err != nil {
		return nil, apperrors.Database("update user", err)
	}
	return r.mustFind(ctx, id)
}

// Delete removes the user and, through cascades, everything it owns.
// Deleting a missing user is not an error.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return apperrors.Database("delete user", r.db.WithContext(ctx).Delete(&entities.User{}, id).Error)
}

// mustFind re-reads a row that was just written. The row can disappear in
// between if another caller deletes it.
func (r *Repository) mustFind(ctx context.Context, id uint) (*entities.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user", id)
	}
	return user, nil
}
