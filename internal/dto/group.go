package dto

import (
	"time"

	"github.com/mrlokans/bookmarks/internal/entities"
)

type Group struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	WorkspaceID uint      `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateGroup struct {
	Name        string `json:"name" validate:"required"`
	WorkspaceID uint   `json:"workspace_id" validate:"required"`
}

type UpdateGroup struct {
	ID          *uint   `json:"id"`
	Name        *string `json:"name"`
	WorkspaceID *uint   `json:"workspace_id"`
}

// BelongedGroupsQuery selects the groups of a workspace, scoped to the
// organization the workspace must belong to.
type BelongedGroupsQuery struct {
	WorkspaceID    uint `json:"workspace_id" validate:"required"`
	OrganizationID uint `json:"organization_id" validate:"required"`
}

func FromGroup(g entities.Group) Group {
	return Group{
		ID:          g.ID,
		Name:        g.Name,
		WorkspaceID: g.WorkspaceID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func FromGroups(groups []entities.Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, FromGroup(g))
	}
	return out
}

func (in CreateGroup) ToEntity(now time.Time) entities.Group {
	return entities.Group{
		Name:        in.Name,
		WorkspaceID: in.WorkspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (in UpdateGroup) Changes(now time.Time) entities.Changeset {
	c := entities.NewChangeset(now)
	if in.Name != nil {
		c.Set("name", *in.Name)
	}
	if in.WorkspaceID != nil {
		c.Set("workspace_id", *in.WorkspaceID)
	}
	return c
}
