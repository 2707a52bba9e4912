package entities

import "time"

// Group belongs to one Workspace and owns bookmarks. Deleting the workspace cascades.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	WorkspaceID uint      `gorm:"index;not null" json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
