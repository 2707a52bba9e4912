package dto

import (
	"time"

	"github.com/mrlokans/bookmarks/internal/entities"
)

type Bookmark struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Tags       string    `json:"tags"`
	IsFavorite bool      `json:"is_favorite"`
	GroupID    *uint     `json:"group_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateBookmark struct {
	Name       string `json:"name" validate:"required"`
	URL        string `json:"url" validate:"required"`
	Tags       string `json:"tags"`
	IsFavorite bool   `json:"is_favorite"`
	GroupID    *uint  `json:"group_id"`
}

type UpdateBookmark struct {
	ID         *uint   `json:"id"`
	Name       *string `json:"name"`
	URL        *string `json:"url"`
	Tags       *string `json:"tags"`
	IsFavorite *bool   `json:"is_favorite"`
	GroupID    *uint   `json:"group_id"`
}

func FromBookmark(b entities.Bookmark) Bookmark {
	return Bookmark{
		ID:         b.ID,
		Name:       b.Name,
		URL:        b.URL,
		Tags:       b.Tags,
		IsFavorite: b.IsFavorite,
		GroupID:    b.GroupID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func FromBookmarks(bookmarks []entities.Bookmark) []Bookmark {
	out := make([]Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, FromBookmark(b))
	}
	return out
}

func (in CreateBookmark) ToEntity(now time.Time) entities.Bookmark {
	return entities.Bookmark{
		Name:       in.Name,
		URL:        in.URL,
		Tags:       in.Tags,
		IsFavorite: in.IsFavorite,
		GroupID:    in.GroupID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (in UpdateBookmark) Changes(now time.Time) entities.Changeset {
	c := entities.NewChangeset(now)
	if in.Name != nil {
		c.Set("name", *in.Name)
	}
	if in.URL != nil {
		c.Set("url", *in.URL)
	}
	if in.Tags != nil {
		c.Set("tags", *in.Tags)
	}
	if in.IsFavorite != nil {
		c.Set("is_favorite", *in.IsFavorite)
	}
	if in.GroupID != nil {
		c.Set("group_id", *in.GroupID)
	}
	return c
}
