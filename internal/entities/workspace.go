package entities

import "time"

// Workspace belongs to one Organization. Deleting the organization cascades.
type Workspace struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	OrganizationID uint      `gorm:"index;not null" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
