package services

import (
	"context"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// UserStore persists users. Implemented by database/users.Repository.
type UserStore interface {
	Create(ctx context.Context, user entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.User, error)
	Delete(ctx context.Context, id uint) error
}

// OrganizationStore persists organizations.
type OrganizationStore interface {
	Create(ctx context.Context, org entities.Organization) (*entities.Organization, error)
	FindByID(ctx context.Context, id uint) (*entities.Organization, error)
	FindAll(ctx context.Context) ([]entities.Organization, error)
	FindByUserID(ctx context.Context, userID uint) ([]entities.Organization, error)
	Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.Organization, error)
	Delete(ctx context.Context, id uint) error
}

// WorkspaceStore persists workspaces.
type WorkspaceStore interface {
	Create(ctx context.Context, ws entities.Workspace) (*entities.Workspace, error)
	FindByID(ctx context.Context, id uint) (*entities.Workspace, error)
	FindAll(ctx context.Context) ([]entities.Workspace, error)
	FindByOrganizationID(ctx context.Context, organizationID uint) ([]entities.Workspace, error)
	Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.Workspace, error)
	Delete(ctx context.Context, id uint) error
}

// GroupStore persists groups.
type GroupStore interface {
	Create(ctx context.Context, group entities.Group) (*entities.Group, error)
	FindByID(ctx context.Context, id uint) (*entities.Group, error)
	FindAll(ctx context.Context) ([]entities.Group, error)
	FindByWorkspaceID(ctx context.Context, workspaceID uint) ([]entities.Group, error)
	FindBelongedGroups(ctx context.Context, workspaceID, organizationID uint) ([]entities.Group, error)
	Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.Group, error)
	Delete(ctx context.Context, id uint) error
}

// BookmarkStore persists bookmarks and answers keyword searches.
type BookmarkStore interface {
	Create(ctx context.Context, bookmark entities.Bookmark) (*entities.Bookmark, error)
	FindByID(ctx context.Context, id uint) (*entities.Bookmark, error)
	FindAll(ctx context.Context) ([]entities.Bookmark, error)
	FindByGroupID(ctx context.Context, groupID uint) ([]entities.Bookmark, error)
	Search(ctx context.Context, query string) ([]entities.Bookmark, error)
	Update(ctx context.Context, id uint, changes entities.Changeset) (*entities.Bookmark, error)
	Delete(ctx context.Context, id uint) error
}
