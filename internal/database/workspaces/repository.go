// Package workspaces provides database operations for workspaces.
package workspaces

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookmarks/internal/apperrors"
	"github.com/mrlokans/bookmarks/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, ws entities.Workspace) (*entities.Workspace, error) {
	if err := r.db.WithContext(ctx).Create(&ws).Error; err != nil {
		return nil, apperrors.Database("create workspace", err)
	}
	return r.mustFind(ctx, ws.ID)
}

// FindByID returns nil, nil when no workspace has the given id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Workspace, error) {
	var ws entities.Workspace
	err := r.db.WithContext(ctx).First(&ws, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Database("find workspace", err)
	}
	return &ws, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.Workspace, error) {
	var list []entities.Workspace
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, apperrors.Database("list workspaces", err)
	}
	return list, nil
}

func (r *Repository) FindByOrganizationID(ctx context.Context, organizationID uint) ([]entities.Workspace, error) {
	var list []entities.Workspace
	err := r.db.WithContext(ctx).Where("organization_id = ?", organizationID).Order("id").Find(&list).Error
	if err != nil {
		return nil, apperrors.Database("list workspaces by organization", err)
	}
	return list, nil
}

func (r *Repository) Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.Workspace, error) {
	ws, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, apperrors.NotFound("workspace", id)
	}

	if err := r.db.WithContext(ctx).Model(ws).Updates(map[string]any(changes)).Error; err != nil {
		return nil, apperrors.Database("update workspace", err)
	}
	return r.mustFind(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	return apperrors.Database("delete workspace", r.db.WithContext(ctx).Delete(&entities.Workspace{}, id).Error)
}

func (r *Repository) mustFind(ctx context.Context, id uint) (*entities.Workspace, error) {
	ws, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, apperrors.NotFound("workspace", id)
	}
	return ws, nil
}
