package dto

import (
	"time"

	"github.com/mrlokans/bookmarks/internal/entities"
)

type Workspace struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	OrganizationID uint      `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateWorkspace struct {
	Name           string `json:"name" validate:"required"`
	OrganizationID uint   `json:"organization_id" validate:"required"`
}

type UpdateWorkspace struct {
	ID             *uint   `json:"id"`
	Name           *string `json:"name"`
	OrganizationID *uint   `json:"organization_id"`
}

func FromWorkspace(w entities.Workspace) Workspace {
	return Workspace{
		ID:             w.ID,
		Name:           w.Name,
		OrganizationID: w.OrganizationID,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func FromWorkspaces(workspaces []entities.Workspace) []Workspace {
	out := make([]Workspace, 0, len(workspaces))
	for _, w := range workspaces {
		out = append(out, FromWorkspace(w))
	}
	return out
}

func (in CreateWorkspace) ToEntity(now time.Time) entities.Workspace {
	return entities.Workspace{
		Name:           in.Name,
		OrganizationID: in.OrganizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (in UpdateWorkspace) Changes(now time.Time) entities.Changeset {
	c := entities.NewChangeset(now)
	if in.Name != nil {
		c.Set("name", *in.Name)
	}
	if in.OrganizationID != nil {
		c.Set("organization_id", *in.OrganizationID)
	}
	return c
}
