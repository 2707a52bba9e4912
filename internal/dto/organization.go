package dto

import (
	"time"

	"github.com/mrlokans/bookmarks/internal/entities"
)

type Organization struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateOrganization struct {
	Name   string `json:"name" validate:"required"`
	UserID uint   `json:"user_id" validate:"required"`
}

type UpdateOrganization struct {
	ID     *uint   `json:"id"`
	Name   *string `json:"name"`
	UserID *uint   `json:"user_id"`
}

func FromOrganization(o entities.Organization) Organization {
	return Organization{
		ID:        o.ID,
		Name:      o.Name,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrganizations(orgs []entities.Organization) []Organization {
	out := make([]Organization, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, FromOrganization(o))
	}
	return out
}

func (in CreateOrganization) ToEntity(now time.Time) entities.Organization {
	return entities.Organization{
		Name:      in.Name,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (in UpdateOrganization) Changes(now time.Time) entities.Changeset {
	c := entities.NewChangeset(now)
	if in.Name != nil {
		c.Set("name", *in.Name)
	}
	if in.UserID != nil {
		c.Set("user_id", *in.UserID)
	}
	return c
}
