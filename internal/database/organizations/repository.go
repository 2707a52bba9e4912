// Package organizations provides database operations for organizations.
package organizations

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/entities"
)

// Repository handles all organization database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new organizations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, org entities.Organization) (*entities.Organization, error) {
	if err := r.db.WithContext(ctx).Create(&org).Error; err != nil {
		return nil, apperrors.Database("create organization", err)
	}
	return r.mustFind(ctx, org.ID)
}

// FindByID returns nil, nil when no organization has the given id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Organization, error) {
	var org entities.Organization
	err := r.db.WithContext(ctx).First(&org, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Database("find organization", err)
	}
	return &org, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.Organization, error) {
	var orgs []entities.Organization
	if err := r.db.WithContext(ctx).Find(&orgs).Error; err != nil {
		return nil, apperrors.Database("list organizations", err)
	}
	return orgs, nil
}

// FindByUserID returns every organization owned by the user.
func (r *Repository) FindByUserID(ctx context.Context, userID uint) ([]entities.Organization, error) {
	var orgs []entities.Organization
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&orgs).Error
	if err != nil {
		return nil, apperrors.Database("list organizations by user", err)
	}
	return orgs, nil
}

func (r *Repository) Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.Organization, error) {
	org, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperrors.NotFound("organization", id)
	}

	if err := r.db.WithContext(ctx).Model(org).Updates(map[string]any(changes)).Error; err != nil {
		return nil, apperrors.Database("update organization", err)
	}
	return r.mustFind(ctx, id)
}

// Delete is idempotent. Workspaces, groups and bookmarks below the
// organization are removed by the database.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return apperrors.Database("delete organization", r.db.WithContext(ctx).Delete(&entities.Organization{}, id).Error)
}

func (r *Repository) mustFind(ctx context.Context, id uint) (*entities.Organization, error) {
	org, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperrors.NotFound("organization", id)
	}
	return org, nil
}
