package entities

import "time"

type Bookmark struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:512;not null" json:"name"`
	URL  string `gorm:"column:url;size:2048;not null" json:"url"`

	// Tags is free text (typically space or comma separated), not a normalized set.
	Tags       string `gorm:"size:1024;not null;default:''" json:"tags"`
	IsFavorite bool   `gorm:"not null;default:false" json:"is_favorite"`

	// GroupID is nullable: a bookmark may live outside any group.
	GroupID *uint `gorm:"index" json:"group_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
