// Package groups provides database operations for bookmark groups.
package groups

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

func (r *Repository) Create(ctx context.Context, group entities.Group) (*entities.Group, error) {
	if err := r.db.WithContext(ctx).Create(&group).Error; err != nil {
		return nil, apperrors.Database("create group", err)
	}
	return r.mustFind(ctx, group.ID)
}

// FindByID returns nil, nil when no group has the given id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Group, error) {
	var group entities.Group
	err := r.db.WithContext(ctx).First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Database("find group", err)
	}
	return &group, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]entities.Group, error) {
	var list []entities.Group
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, apperrors.Database("list groups", err)
	}
	return list, nil
}

func (r *Repository) FindByWorkspaceID(ctx context.Context, workspaceID uint) ([]entities.Group, error) {
	var list []entities.Group
	err := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).Order("id").Find(&list).Error
	if err != nil {
		return nil, apperrors.Database("list groups by workspace", err)
	}
	return list, nil
}

// FindBelongedGroups returns the groups of a workspace, but only when that
// workspace belongs to the given organization. A mismatched pair yields an
// empty list.
func (r *Repository) FindBelongedGroups(ctx context.Context, workspaceID, organizationID uint) ([]entities.Group, error) {
	var list []entities.Group
	// "groups" is a reserved word in both SQLite and Postgres.
	err := r.db.WithContext(ctx).
		Select(`"groups".*`).
		Joins(`JOIN workspaces ON workspaces.id = "groups".workspace_id`).
		Where(`"groups".workspace_id = ? AND workspaces.organization_id = ?`, workspaceID, organizationID).
		Order(`"groups".id`).
		Find(&list).Error
	if err != nil {
		return nil, apperrors.Database("list belonged groups", err)
	}
	return list, nil
}

func (r *Repository) Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.Group, error) {
	group, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NotFound("group", id)
	}

	if err := r.db.WithContext(ctx).Model(group).Updates(map[string]any(changes)).Error; err != nil {
		return nil, apperrors.Database("update group", err)
	}
	return r.mustFind(ctx, id)
}

// Delete is idempotent; the group's bookmarks are removed by cascade.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return apperrors.Database("delete group", r.db.WithContext(ctx).Delete(&entities.Group{}, id).Error)
}

func (r *Repository) mustFind(ctx context.Context, id uint) (*entities.Group, error) {
	group, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NotFound("group", id)
	}
	return group, nil
}
